package domain

import "encoding/json"

// FlexString decodes a JSON string, number, or null into its literal text.
// The front end sends some figures as numbers and some as strings; values of
// any other shape degrade to the empty string rather than failing the decode.
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || string(b) == "null" {
		*f = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			*f = ""
			return nil
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		*f = ""
		return nil
	}
	*f = FlexString(n.String())
	return nil
}

func (f FlexString) String() string { return string(f) }

// ShiftReport is one operational shift's production data as submitted by the
// front end. Every field is optional; the JSON keys follow the original
// front-end contract.
type ShiftReport struct {
	Operator        string          `json:"operador"`
	SignOff         string          `json:"visto"`
	SupervisorCode  FlexString      `json:"hp"`
	Shift           string          `json:"turno"`
	Date            string          `json:"data"`
	Overtime        FlexString      `json:"horasExtras"`
	Silos           []SiloEntry     `json:"silos"`
	Stoppages       []StoppageEvent `json:"paradas"`
	EffectiveTime   string          `json:"tempoEfetivo"`
	Tonnage         FlexString      `json:"toneladas"`
	ProductionTotal FlexString      `json:"producaoTotal"`
	HourlyRate      FlexString      `json:"producaoPorHora"`
	StoppageSummary StoppageSummary `json:"resumoParadas"`
	Observations    string          `json:"observacoes"`
	ObservationsAlt string          `json:"observacoes/atuações"`
	Checklist       []ChecklistItem `json:"checklist"`
}

// SiloEntry is one product silo's stock level and hours worked.
type SiloEntry struct {
	Name        string     `json:"nome"`
	Stock       FlexString `json:"estoque"`
	HoursWorked FlexString `json:"horasTrabalhadas"`
}

// StoppageEvent is a single recorded interruption of the line.
type StoppageEvent struct {
	Start    string `json:"inicio"`
	End      string `json:"fim"`
	Reason   string `json:"motivo"`
	Duration string `json:"duracao"` // "HH:MM"
	Note     string `json:"observacao"`
}

// StoppageSummary carries front-end supplied aggregates that override the
// values derived from the stoppage log.
type StoppageSummary struct {
	TotalStoppages *int    `json:"totalParadas"`
	TotalTime      *string `json:"tempoTotalParadas"`
}

// ChecklistItem is one equipment line of the end-of-shift checklist.
type ChecklistItem struct {
	Equipment string `json:"equipamento"`
	Status    string `json:"situacao"`
	Note      string `json:"observacao"`
}
