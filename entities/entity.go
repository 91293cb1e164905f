package entities

import "fmt"

type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (c Coordinate) String() string {
	return fmt.Sprintf("%f,%f", c.Lat, c.Lng)
}

// Placemark is a coordinate with an optional human readable name.
type Placemark struct {
	Name       string     `json:"name,omitempty"`
	Coordinate Coordinate `json:"coordinate"`
}

func (p Placemark) Title() string {
	if p.Name != "" {
		return p.Name
	}
	return p.Coordinate.String()
}

type TransportMode int

const (
	TransportAutomobile TransportMode = iota
	TransportWalking
	TransportTransit
	TransportAny
)

func (m TransportMode) String() string {
	switch m {
	case TransportAutomobile:
		return "automobile"
	case TransportWalking:
		return "walking"
	case TransportTransit:
		return "transit"
	case TransportAny:
		return "any"
	}
	return fmt.Sprintf("TransportMode(%d)", int(m))
}

// ParseTransportMode accepts the names produced by TransportMode.String.
func ParseTransportMode(s string) (TransportMode, error) {
	switch s {
	case "automobile", "driving", "":
		return TransportAutomobile, nil
	case "walking":
		return TransportWalking, nil
	case "transit":
		return TransportTransit, nil
	case "any":
		return TransportAny, nil
	}
	return 0, fmt.Errorf("unknown transport mode %q", s)
}

type RouteRequest struct {
	Source      Placemark
	Destination Placemark
	Transport   TransportMode
}

type Step struct {
	Instruction    string `json:"instruction"`
	DistanceMeters int    `json:"distance_meters,omitempty"`
}

type Route struct {
	Summary        string       `json:"summary,omitempty"`
	DistanceMeters int          `json:"distance_meters,omitempty"`
	Polyline       []Coordinate `json:"polyline"`
	Steps          []Step       `json:"steps"`
}

// Instructions returns the step instructions in order, skipping empty ones.
func (r Route) Instructions() []string {
	out := make([]string, 0, len(r.Steps))
	for _, s := range r.Steps {
		if s.Instruction == "" {
			continue
		}
		out = append(out, s.Instruction)
	}
	return out
}
