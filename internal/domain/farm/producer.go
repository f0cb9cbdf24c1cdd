package farm

import (
	"fmt"
	"strings"
	"time"
)

// Producer is the grower who owns farms.
type Producer struct {
	id        uint
	name      string
	document  string
	active    bool
	createdAt time.Time
}

func NewProducer(name, document string) (*Producer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	return &Producer{
		name:      name,
		document:  strings.TrimSpace(document),
		active:    true,
		createdAt: time.Now(),
	}, nil
}

func ReconstructProducer(id uint, name, document string, active bool, createdAt time.Time) *Producer {
	return &Producer{id: id, name: name, document: document, active: active, createdAt: createdAt}
}

func (p *Producer) ID() uint             { return p.id }
func (p *Producer) Name() string         { return p.name }
func (p *Producer) Document() string     { return p.document }
func (p *Producer) IsActive() bool       { return p.active }
func (p *Producer) CreatedAt() time.Time { return p.createdAt }

func (p *Producer) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("producer ID is already set")
	}
	p.id = id
	return nil
}
