package roadmap

import (
	"encoding/json"
	"errors"
	"os"
)

// wire mirrors the map file layout:
// {offset:{x,y,z}, roadLine:[{RoadId, BoundaryPoints:[{x,y,LineColor,LineType},...]},...]}
type wireDoc struct {
	Offset   *Point3    `json:"offset"`
	RoadLine []wireRoad `json:"roadLine"`
}

type wireRoad struct {
	RoadID         string      `json:"RoadId"`
	BoundaryPoints []wirePoint `json:"BoundaryPoints"`
}

type wirePoint struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	LineColor string  `json:"LineColor"`
	LineType  string  `json:"LineType"`
}

// Parse decodes a map document. A missing offset is treated as origin.
// Roads with no id or short point lists are kept; they are valid data.
func Parse(data []byte) (Document, error) {
	var raw wireDoc
	if err := json.Unmarshal(data, &raw); err != nil {
		return Document{}, err
	}
	if raw.RoadLine == nil {
		return Document{}, errors.New("roadmap: missing roadLine")
	}
	var d Document
	if raw.Offset != nil {
		d.Offset = *raw.Offset
	}
	d.Roads = make([]Road, 0, len(raw.RoadLine))
	for _, rl := range raw.RoadLine {
		r := Road{ID: rl.RoadID}
		for _, p := range rl.BoundaryPoints {
			r.BoundaryPoints = append(r.BoundaryPoints, BoundaryPoint{
				X:         p.X,
				Y:         p.Y,
				LineColor: p.LineColor,
				LineType:  p.LineType,
			})
		}
		d.Roads = append(d.Roads, r)
	}
	return d, nil
}

// LoadFile reads and parses a map document from disk.
func LoadFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, err
	}
	return Parse(data)
}
