package wizard

// Option is one selectable value with its display label. Pro-se labels carry
// plain-language explanations; professional labels are terse.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Catalog holds every role-conditioned option list as configuration data.
// Validators look values up here instead of branching on role per field.
type Catalog struct {
	CaseTypes          map[Role][]Option
	Jurisdictions      map[Role][]Option
	PartyTypes         map[Role][]Option
	PartyCategories    map[Role][]Option
	DateTypes          map[Role][]Option
	Priorities         map[Role][]Option
	DocumentTypes      map[Role][]Option
	DocumentCategories map[Role][]Option
}

// DefaultCatalog is the production option set.
var DefaultCatalog = &Catalog{
	CaseTypes: map[Role][]Option{
		RoleLegalProfessional: {
			{"civil_litigation", "Civil Litigation"},
			{"contract_dispute", "Contract Dispute"},
			{"personal_injury", "Personal Injury"},
			{"employment", "Employment Law"},
			{"business_dispute", "Business Dispute"},
			{"real_estate", "Real Estate"},
			{"family_law", "Family Law"},
			{"probate", "Probate & Estate"},
			{"intellectual_property", "Intellectual Property"},
			{"bankruptcy", "Bankruptcy"},
			{"criminal_defense", "Criminal Defense"},
			{"other", "Other"},
		},
		RoleProSe: {
			{"landlord_tenant", "Landlord/Tenant Dispute"},
			{"small_claims", "Small Claims"},
			{"family_law", "Family Law (Divorce, Custody)"},
			{"employment", "Employment Issue"},
			{"consumer_dispute", "Consumer Complaint"},
			{"personal_injury", "Personal Injury"},
			{"contract_dispute", "Contract Issue"},
			{"debt_collection", "Debt Collection"},
			{"other", "Other"},
		},
	},
	Jurisdictions: map[Role][]Option{
		RoleLegalProfessional: jurisdictionOptions,
		RoleProSe:             jurisdictionOptions,
	},
	PartyTypes: map[Role][]Option{
		RoleLegalProfessional: {
			{"plaintiff", "Plaintiff"},
			{"defendant", "Defendant"},
			{"petitioner", "Petitioner"},
			{"respondent", "Respondent"},
			{"appellant", "Appellant"},
			{"appellee", "Appellee"},
			{"third_party_defendant", "Third Party Defendant"},
			{"intervenor", "Intervenor"},
			{"witness", "Witness"},
			{"expert_witness", "Expert Witness"},
			{"other", "Other"},
		},
		RoleProSe: {
			{"plaintiff", "Plaintiff (The person bringing the case)"},
			{"defendant", "Defendant (The person being sued)"},
			{"petitioner", "Petitioner (Person requesting court action)"},
			{"respondent", "Respondent (Person responding to petition)"},
			{"witness", "Witness"},
			{"other", "Other"},
		},
	},
	PartyCategories: map[Role][]Option{
		RoleLegalProfessional: {
			{"individual", "Individual"},
			{"corporation", "Corporation"},
			{"llc", "LLC"},
			{"partnership", "Partnership"},
			{"government_entity", "Government Entity"},
			{"non_profit", "Non-Profit Organization"},
			{"trust", "Trust"},
			{"estate", "Estate"},
			{"other_entity", "Other Entity"},
		},
		RoleProSe: {
			{"person", "Person/Individual"},
			{"business", "Business/Company"},
			{"government", "Government Agency"},
			{"other", "Other"},
		},
	},
	DateTypes: map[Role][]Option{
		RoleLegalProfessional: {
			{"filing_deadline", "Filing Deadline"},
			{"discovery_deadline", "Discovery Deadline"},
			{"motion_deadline", "Motion Deadline"},
			{"response_due", "Response Due"},
			{"hearing_date", "Hearing Date"},
			{"trial_date", "Trial Date"},
			{"deposition_date", "Deposition Date"},
			{"mediation_date", "Mediation Date"},
			{"arbitration_date", "Arbitration Date"},
			{"settlement_conference", "Settlement Conference"},
			{"case_management_conference", "Case Management Conference"},
			{"status_conference", "Status Conference"},
			{"appeal_deadline", "Appeal Deadline"},
			{"expert_disclosure", "Expert Disclosure Deadline"},
			{"witness_list_due", "Witness List Due"},
			{"other", "Other"},
		},
		RoleProSe: {
			{"court_date", "Court Date (When you need to appear)"},
			{"filing_deadline", "Filing Deadline (When papers are due)"},
			{"response_due", "Response Due (When the other party must respond)"},
			{"hearing_date", "Hearing (When the judge will listen to arguments)"},
			{"trial_date", "Trial Date (When your case will be decided)"},
			{"mediation_date", "Mediation (Meeting to try to settle)"},
			{"important_deadline", "Important Deadline"},
			{"other", "Other Important Date"},
		},
	},
	Priorities: map[Role][]Option{
		RoleLegalProfessional: {
			{"critical", "Critical"},
			{"high", "High"},
			{"medium", "Medium"},
			{"low", "Low"},
		},
		RoleProSe: {
			{"critical", "Must Not Miss (Critical)"},
			{"high", "Very Important"},
			{"medium", "Important"},
			{"low", "Nice to Remember"},
		},
	},
	DocumentTypes: map[Role][]Option{
		RoleLegalProfessional: {
			{"pleading", "Pleading"},
			{"motion", "Motion"},
			{"discovery", "Discovery Document"},
			{"evidence", "Evidence"},
			{"correspondence", "Correspondence"},
			{"court_order", "Court Order"},
			{"transcript", "Transcript"},
			{"expert_report", "Expert Report"},
			{"medical_record", "Medical Record"},
			{"financial_record", "Financial Record"},
			{"contract", "Contract/Agreement"},
			{"insurance_document", "Insurance Document"},
			{"government_document", "Government Document"},
			{"witness_statement", "Witness Statement"},
			{"photograph", "Photograph/Image"},
			{"other", "Other"},
		},
		RoleProSe: {
			{"complaint", "Complaint/Petition (The document that starts your case)"},
			{"response", "Response/Answer (Reply to the other party)"},
			{"evidence", "Evidence (Photos, receipts, contracts, etc.)"},
			{"correspondence", "Letters/Emails (Communication about your case)"},
			{"court_document", "Court Document (Orders, notices from court)"},
			{"financial_document", "Financial Document (Bills, receipts, bank statements)"},
			{"medical_document", "Medical Document (If applicable to your case)"},
			{"witness_statement", "Witness Statement (Written statements from witnesses)"},
			{"photograph", "Photos/Images (Pictures relevant to your case)"},
			{"other", "Other Important Document"},
		},
	},
	DocumentCategories: map[Role][]Option{
		RoleLegalProfessional: {
			{"filed_with_court", "Filed with Court"},
			{"to_be_filed", "To Be Filed"},
			{"received_from_opposing", "Received from Opposing Party"},
			{"internal_work_product", "Internal Work Product"},
			{"evidence_exhibits", "Evidence/Exhibits"},
			{"research_reference", "Research/Reference"},
			{"correspondence", "Correspondence"},
			{"discovery_materials", "Discovery Materials"},
		},
		RoleProSe: {
			{"my_documents", "My Documents (I created/have)"},
			{"court_documents", "From the Court (Official court papers)"},
			{"other_party_documents", "From Other Party (They sent me)"},
			{"evidence", "Evidence (Proof for my case)"},
			{"to_file", "Need to File (Will submit to court)"},
			{"reference", "Reference (For my information)"},
		},
	},
}

var jurisdictionOptions = []Option{
	{"federal", "Federal Court"},
	{"state", "State Court"},
	{"local", "Local/Municipal Court"},
	{"administrative", "Administrative Body"},
}

// contains reports whether value is a valid option for the given role list.
func contains(opts []Option, value string) bool {
	for _, o := range opts {
		if o.Value == value {
			return true
		}
	}
	return false
}

// priorityRank orders key dates: critical sorts first, unknown values last.
var priorityRank = map[string]int{
	"critical": 1,
	"high":     2,
	"medium":   3,
	"low":      4,
}
