package permission

import "agroplan/internal/shared/authorization"

// Resources guarded by the HTTP layer.
const (
	ResourceRecord      = "programacao"
	ResourceApplication = "aplicacao_defensivo"
	ResourceCatalog     = "catalogo"
	ResourceReference   = "cadastro"
	ResourceReport      = "relatorio"
)

// Actions. ActionAll matches every action of a resource.
const (
	ActionRead      = "read"
	ActionWrite     = "write"
	ActionReplicate = "replicate"
	ActionImport    = "import"
	ActionAll       = "*"
)

type Policy struct {
	Role     string
	Resource string
	Action   string
}

var (
	admin      = authorization.RoleAdmin.String()
	manager    = authorization.RoleManager.String()
	consultant = authorization.RoleConsultant.String()
)

// DefaultPolicies: catalog imports and reference writes are admin-only,
// replication is for admin and gestor, reads and record CRUD for everyone.
var DefaultPolicies = []Policy{
	{admin, ResourceRecord, ActionAll},
	{admin, ResourceApplication, ActionAll},
	{admin, ResourceCatalog, ActionAll},
	{admin, ResourceReference, ActionAll},
	{admin, ResourceReport, ActionAll},

	{manager, ResourceRecord, ActionRead},
	{manager, ResourceRecord, ActionWrite},
	{manager, ResourceRecord, ActionReplicate},
	{manager, ResourceApplication, ActionRead},
	{manager, ResourceApplication, ActionWrite},
	{manager, ResourceApplication, ActionReplicate},
	{manager, ResourceCatalog, ActionRead},
	{manager, ResourceCatalog, ActionWrite},
	{manager, ResourceReference, ActionRead},
	{manager, ResourceReport, ActionRead},

	{consultant, ResourceRecord, ActionRead},
	{consultant, ResourceRecord, ActionWrite},
	{consultant, ResourceApplication, ActionRead},
	{consultant, ResourceApplication, ActionWrite},
	{consultant, ResourceCatalog, ActionRead},
	{consultant, ResourceReference, ActionRead},
	{consultant, ResourceReport, ActionRead},
}
