package matchmaking

import (
	"kundali/internal/core/chart"
)

// PersonPayload is the wire form of one chart slice. Indices follow the
// canonical enumerations: nakshatras 0..26 from Ashwini, rashis 0..11 from
// Aries, grahas 0..8 ending at Rahu and Ketu. House positions are 1..12 with
// 0 meaning not supplied
type PersonPayload struct {
	MoonNakshatra int `json:"moon_nakshatra" validate:"min=0,max=26"`
	MoonRashi     int `json:"moon_rashi" validate:"min=0,max=11"`
	Ascendant     int `json:"ascendant" validate:"min=0,max=11"`

	MarsHouse    int `json:"mars_house,omitempty" validate:"min=0,max=12"`
	JupiterHouse int `json:"jupiter_house,omitempty" validate:"min=0,max=12"`
	VenusHouse   int `json:"venus_house,omitempty" validate:"min=0,max=12"`
	SaturnHouse  int `json:"saturn_house,omitempty" validate:"min=0,max=12"`

	DashaLord    int `json:"dasha_lord" validate:"min=0,max=8"`
	SubDashaLord int `json:"sub_dasha_lord" validate:"min=0,max=8"`
}

// ToPerson converts the payload to the core chart type
func (p PersonPayload) ToPerson() chart.Person {
	return chart.Person{
		MoonNakshatra: chart.Nakshatra(p.MoonNakshatra),
		MoonRashi:     chart.Rashi(p.MoonRashi),
		Ascendant:     chart.Rashi(p.Ascendant),
		MarsHouse:     chart.House(p.MarsHouse),
		JupiterHouse:  chart.House(p.JupiterHouse),
		VenusHouse:    chart.House(p.VenusHouse),
		SaturnHouse:   chart.House(p.SaturnHouse),
		DashaLord:     chart.Graha(p.DashaLord),
		SubDashaLord:  chart.Graha(p.SubDashaLord),
	}
}

// PairRequest is the wire form of one pair computation. A is the groom-analog
// side by convention
type PairRequest struct {
	A PersonPayload `json:"a"`
	B PersonPayload `json:"b"`
}

// CandidatePayload is one batch candidate. ID is optional; the service
// assigns a uuid when it is empty
type CandidatePayload struct {
	ID     string        `json:"id" validate:"max=64"`
	Person PersonPayload `json:"person"`
}

// BatchRequest is the wire form of one batch run
type BatchRequest struct {
	Subject    PersonPayload      `json:"subject"`
	Candidates []CandidatePayload `json:"candidates" validate:"min=1"`
}
