package models

import "time"

// Lead stages describe the position in the sales/processing pipeline.
const (
	StageNew            = "NEW"
	StageContacted      = "CONTACTED"
	StagePrequal        = "PREQUAL"
	StageDocsRequested  = "DOCS_REQUESTED"
	StageDocsReceived   = "DOCS_RECEIVED"
	StagePackaged       = "PACKAGED"
	StageSubmitted      = "SUBMITTED"
	StageApproved       = "APPROVED"
	StageFunded         = "FUNDED"
	StageLost           = "LOST"
)

// Application statuses track underwriting progress, independent of stage.
const (
	AppStatusNotStarted          = "NOT_STARTED"
	AppStatusContacted           = "CONTACTED"
	AppStatusInProgress          = "IN_PROGRESS"
	AppStatusConditionalApproved = "CONDITIONAL_APPROVED"
	AppStatusApproved            = "APPROVED"
)

const (
	LeadTypePurchase   = "PURCHASE"
	LeadTypeRefinance  = "REFINANCE"
	LeadTypeRenewal    = "RENEWAL"
	LeadTypeEquityLine = "EQUITY_LINE"
	LeadTypeOther      = "OTHER"
)

const (
	SourceTypeBank       = "BANK"
	SourceTypeOnline     = "ONLINE"
	SourceTypeSelfSource = "SELF_SOURCE"
	SourceTypeOther      = "OTHER"
)

var Stages = []string{
	StageNew, StageContacted, StagePrequal, StageDocsRequested, StageDocsReceived,
	StagePackaged, StageSubmitted, StageApproved, StageFunded, StageLost,
}

var ApplicationStatuses = []string{
	AppStatusNotStarted, AppStatusContacted, AppStatusInProgress,
	AppStatusConditionalApproved, AppStatusApproved,
}

var LeadTypes = []string{
	LeadTypePurchase, LeadTypeRefinance, LeadTypeRenewal, LeadTypeEquityLine, LeadTypeOther,
}

var SourceTypes = []string{
	SourceTypeBank, SourceTypeOnline, SourceTypeSelfSource, SourceTypeOther,
}

type Lead struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	FirstName         string     `gorm:"size:100;not null" json:"firstName"`
	LastName          string     `gorm:"size:100;not null" json:"lastName"`
	Email             *string    `gorm:"size:255" json:"email"`
	Phone             *string    `gorm:"size:50" json:"phone"`
	SourceType        string     `gorm:"size:20;not null;default:'OTHER'" json:"sourceType"`
	ReferrerID        *uint      `gorm:"index" json:"referrerId"`
	Referrer          *Referrer  `json:"referrer,omitempty"`
	LeadType          string     `gorm:"size:20;not null;default:'PURCHASE'" json:"leadType"`
	Stage             string     `gorm:"size:20;not null;default:'NEW'" json:"stage"`
	ApplicationStatus string     `gorm:"size:30;not null;default:'NOT_STARTED'" json:"applicationStatus"`
	PropertyValue     *float64   `json:"propertyValue"`
	DownPayment       *float64   `json:"downPayment"`
	LoanAmount        *float64   `json:"loanAmount"`
	InterestRate      *float64   `json:"interestRate"`
	TermYears         *int       `json:"termYears"`
	MonthlyIncome     *float64   `json:"monthlyIncome"`
	MonthlyDebts      *float64   `json:"monthlyDebts"`
	CreditScore       *int       `json:"creditScore"`
	GdsRatio          *float64   `json:"gdsRatio"`
	TdsRatio          *float64   `json:"tdsRatio"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`

	Tasks      []Task         `json:"tasks,omitempty"`
	Notes      []Note         `json:"notes,omitempty"`
	Emails     []EmailMessage `json:"emails,omitempty"`
	Checklists []Checklist    `json:"checklists,omitempty"`
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func ValidStage(v string) bool             { return contains(Stages, v) }
func ValidApplicationStatus(v string) bool { return contains(ApplicationStatuses, v) }
func ValidLeadType(v string) bool          { return contains(LeadTypes, v) }
func ValidSourceType(v string) bool        { return contains(SourceTypes, v) }
