package state

import (
	"encoding/json"
	"io"
	"time"
)

// SnapshotExport is the JSON-serializable representation of a snapshot.
type SnapshotExport struct {
	Timestamp time.Time      `json:"timestamp"`
	Observer  ObserverExport `json:"observer"`
	Sun       SunExport      `json:"sun"`
	Objects   []ObjectExport `json:"objects"`
	Events    []Event        `json:"events,omitempty"`
}

// ObserverExport is the observing site.
type ObserverExport struct {
	Name      string  `json:"name,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// SunExport is the Sun's altitude and the resulting sky darkness.
type SunExport struct {
	Altitude float64 `json:"altitude"`
	Phase    string  `json:"phase"`
	Error    string  `json:"error,omitempty"`
}

// ObjectExport is one object's catalog data and apparent position. Azimuth
// is omitted when the geometry leaves it undefined.
type ObjectExport struct {
	ID            string   `json:"id"`
	Name          string   `json:"name,omitempty"`
	Type          string   `json:"type"`
	Constellation string   `json:"constellation"`
	Magnitude     float64  `json:"magnitude"`
	RA            float64  `json:"ra"`
	Dec           float64  `json:"dec"`
	Altitude      *float64 `json:"altitude,omitempty"`
	Azimuth       *float64 `json:"azimuth,omitempty"`
	SunSeparation float64  `json:"sun_separation"`
	Visible       bool     `json:"visible"`
	Error         string   `json:"error,omitempty"`
}

// ExportSnapshot converts a Snapshot to an exportable format.
func ExportSnapshot(snap Snapshot) *SnapshotExport {
	export := &SnapshotExport{
		Timestamp: snap.Time,
		Observer: ObserverExport{
			Name:      snap.Observer.Name,
			Latitude:  snap.Observer.LatDeg,
			Longitude: snap.Observer.LonDeg,
		},
		Sun: SunExport{
			Altitude: snap.SunAltDeg,
			Phase:    snap.Phase.String(),
		},
		Objects: make([]ObjectExport, 0, len(snap.Positions)),
		Events:  snap.Events,
	}
	if snap.SunErr != nil {
		export.Sun = SunExport{Error: snap.SunErr.Error()}
	}

	for _, p := range snap.Positions {
		o := p.Object
		obj := ObjectExport{
			ID:            o.ID(),
			Name:          o.Name,
			Type:          string(o.Type),
			Constellation: o.Constellation,
			Magnitude:     o.Magnitude,
			RA:            o.RAdeg,
			Dec:           o.DecDeg,
			SunSeparation: p.SunSepDeg,
			Visible:       p.Visible(snap.MinAltitude),
		}
		if p.Err != nil {
			obj.Error = p.Err.Error()
		} else {
			alt := p.AltDeg
			obj.Altitude = &alt
			if p.AzDefined {
				az := p.AzDeg
				obj.Azimuth = &az
			}
		}
		export.Objects = append(export.Objects, obj)
	}

	return export
}

// WriteJSON writes the snapshot as JSON to the given writer.
func (s *SnapshotExport) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}
