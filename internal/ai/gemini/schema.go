package gemini

// Schema is a declarative description of the JSON shape the model must
// return, in the subset of OpenAPI types the generateContent API accepts.
type Schema struct {
	Type        string             `json:"type"`
	Description string             `json:"description,omitempty"`
	Enum        []string           `json:"enum,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Required    []string           `json:"required,omitempty"`
}

// Schema type names accepted by the API.
const (
	TypeObject  = "OBJECT"
	TypeArray   = "ARRAY"
	TypeString  = "STRING"
	TypeInteger = "INTEGER"
)

func stringArray() *Schema {
	return &Schema{Type: TypeArray, Items: &Schema{Type: TypeString}}
}

// analysisResponseSchema declares the exact report shape: checklist items,
// risk assessment, compliance evaluation, and summary stats. Requiring
// legal_basis on every checklist item is what forces the model to cite a
// specific statute and article instead of a vague reference.
func analysisResponseSchema() *Schema {
	checklistItem := &Schema{
		Type: TypeObject,
		Properties: map[string]*Schema{
			"item_title":      {Type: TypeString},
			"status":          {Type: TypeString, Enum: []string{"OK", "WARN", "FAIL"}},
			"why_it_matters":  {Type: TypeString},
			"required_action": {Type: TypeString},
			"legal_basis":     {Type: TypeString, Description: "근거 법령 및 조항 (예: 산업안전보건법 제38조)"},
			"evidence":        stringArray(),
		},
		Required: []string{"item_title", "status", "why_it_matters", "required_action", "legal_basis", "evidence"},
	}

	return &Schema{
		Type: TypeObject,
		Properties: map[string]*Schema{
			"checklist": {Type: TypeArray, Items: checklistItem},
			"risk_assessment": {
				Type: TypeObject,
				Properties: map[string]*Schema{
					"overview":      {Type: TypeString},
					"hazards":       stringArray(),
					"measures":      stringArray(),
					"residual_risk": {Type: TypeString},
					"legal_basis":   stringArray(),
				},
			},
			"compliance_evaluation": {
				Type: TypeObject,
				Properties: map[string]*Schema{
					"applied_laws": stringArray(),
					"summary":      {Type: TypeString},
					"improvements": stringArray(),
					"legal_basis":  stringArray(),
				},
			},
			"summary_stats": {
				Type: TypeObject,
				Properties: map[string]*Schema{
					"total_items":   {Type: TypeInteger},
					"fail_count":    {Type: TypeInteger},
					"warn_count":    {Type: TypeInteger},
					"top_3_actions": stringArray(),
				},
			},
		},
		Required: []string{"checklist", "risk_assessment", "compliance_evaluation", "summary_stats"},
	}
}
