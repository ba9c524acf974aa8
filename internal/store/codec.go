package store

import (
	"encoding/json"
	"fmt"
	"time"

	"utms/internal/models"
)

const (
	storageName   = "json_collection"
	formatVersion = 1
)

// Meta describes one write of a collection file.
type Meta struct {
	Storage   string    `json:"storage"`
	Version   int       `json:"version"`
	Revision  string    `json:"revision"` // new UUID on every write
	Timestamp time.Time `json:"timestamp"`
}

// document is the on-disk shape of a collection file.
type document struct {
	Meta  Meta              `json:"_meta"`
	Items []json.RawMessage `json:"items"`
}

// itemCodec converts one collection element to and from JSON and copies it.
type itemCodec[T any] struct {
	marshal   func(T) (json.RawMessage, error)
	unmarshal func(json.RawMessage) (T, error)
	clone     func(T) T
}

func jsonCodec[E any](clone func(*E) *E) itemCodec[*E] {
	return itemCodec[*E]{
		marshal: func(e *E) (json.RawMessage, error) {
			return json.Marshal(e)
		},
		unmarshal: func(raw json.RawMessage) (*E, error) {
			e := new(E)
			if err := json.Unmarshal(raw, e); err != nil {
				return nil, err
			}
			return e, nil
		},
		clone: clone,
	}
}

var (
	studentCodec  = jsonCodec((*models.Student).Clone)
	lecturerCodec = jsonCodec((*models.Lecturer).Clone)
	officerCodec  = jsonCodec((*models.TransportOfficer).Clone)
	vehicleCodec  = itemCodec[models.Vehicle]{
		marshal:   marshalVehicle,
		unmarshal: unmarshalVehicle,
		clone:     models.Vehicle.Clone,
	}
)

// vehicleEnvelope tags a vehicle with its variant so it can be decoded
// back into the right concrete type.
type vehicleEnvelope struct {
	Kind models.VehicleKind `json:"kind"`
	Data json.RawMessage    `json:"data"`
}

func marshalVehicle(v models.Vehicle) (json.RawMessage, error) {
	var kind models.VehicleKind
	switch v.(type) {
	case *models.Bus:
		kind = models.KindBus
	case *models.Van:
		kind = models.KindVan
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownVehicleKind, v)
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return json.Marshal(vehicleEnvelope{Kind: kind, Data: data})
}

func unmarshalVehicle(raw json.RawMessage) (models.Vehicle, error) {
	var env vehicleEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, err
	}
	switch env.Kind {
	case models.KindBus:
		b := new(models.Bus)
		if err := json.Unmarshal(env.Data, b); err != nil {
			return nil, fmt.Errorf("bus: %w", err)
		}
		return b, nil
	case models.KindVan:
		v := new(models.Van)
		if err := json.Unmarshal(env.Data, v); err != nil {
			return nil, fmt.Errorf("van: %w", err)
		}
		return v, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownVehicleKind, env.Kind)
	}
}

func encodeDocument[T any](items []T, codec itemCodec[T], meta Meta) ([]byte, error) {
	doc := document{Meta: meta, Items: make([]json.RawMessage, 0, len(items))}
	for i, item := range items {
		raw, err := codec.marshal(item)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		doc.Items = append(doc.Items, raw)
	}
	return json.MarshalIndent(doc, "", "  ")
}

// decodeDocument is all-or-nothing: one bad item rejects the whole file.
func decodeDocument[T any](data []byte, codec itemCodec[T]) ([]T, Meta, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, Meta{}, err
	}
	if doc.Meta.Version > formatVersion {
		return nil, doc.Meta, fmt.Errorf("unsupported format version %d", doc.Meta.Version)
	}
	items := make([]T, 0, len(doc.Items))
	for i, raw := range doc.Items {
		item, err := codec.unmarshal(raw)
		if err != nil {
			return nil, doc.Meta, fmt.Errorf("item %d: %w", i, err)
		}
		items = append(items, item)
	}
	return items, doc.Meta, nil
}
