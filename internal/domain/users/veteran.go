package users

// VeteranProfile complementa el perfil de cuentas tipo veteran.
type VeteranProfile struct {
	ID                         string          `json:"id"`
	UserID                     string          `json:"userId"`
	MilitaryBranch             string          `json:"militaryBranch"`
	ServiceStatus              string          `json:"serviceStatus"`
	ServiceNumber              string          `json:"serviceNumber,omitempty"`
	Rank                       string          `json:"rank,omitempty"`
	YearsOfService             *int            `json:"yearsOfService,omitempty"`
	DisabilityRating           string          `json:"disabilityRating,omitempty"`
	VAFacility                 string          `json:"vaFacility,omitempty"`
	ServiceConnectedConditions []string        `json:"serviceConnectedConditions,omitempty"`
	Benefits                   *VeteranBenefit `json:"benefits,omitempty"`
	CreatedAt                  string          `json:"createdAt,omitempty"`
	UpdatedAt                  string          `json:"updatedAt,omitempty"`
}

type VeteranBenefit struct {
	Healthcare bool `json:"healthcare"`
	Disability bool `json:"disability"`
	Education  bool `json:"education"`
	Housing    bool `json:"housing"`
	Employment bool `json:"employment"`
}

// VeteranService es una entrada del catálogo mostrado en la página de veteranos.
type VeteranService struct {
	Key         string `json:"key"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// VeteranServices es el catálogo estático de servicios VA.
var VeteranServices = []VeteranService{
	{Key: "healthcare", Title: "VA Healthcare", Description: "Enrollment status and VA facility appointments"},
	{Key: "disability", Title: "Disability Compensation", Description: "Service-connected conditions and rating"},
	{Key: "education", Title: "Education Benefits", Description: "GI Bill and training programs"},
	{Key: "housing", Title: "Housing Assistance", Description: "Home loans and housing grants"},
	{Key: "employment", Title: "Employment Services", Description: "Career counseling and job placement"},
}
