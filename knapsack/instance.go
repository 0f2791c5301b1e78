package knapsack

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Instance is the raw problem data. The JSON field names are the on-disk
// instance format shared with the generator.
type Instance struct {
	NbItems  int     `json:"nb_items"`
	Capacity int64   `json:"capacity"`
	Weight   []int64 `json:"weight"`
	Profit   []int64 `json:"profit"`
}

// Validate checks the structural invariants of the instance.
//
// Errors: ErrNilInstance, ErrLengthMismatch, ErrNegativeCapacity,
// ErrNonPositiveWeight, ErrNegativeProfit.
func (in *Instance) Validate() error {
	if in == nil {
		return ErrNilInstance
	}
	if len(in.Weight) != in.NbItems || len(in.Profit) != in.NbItems {
		return ErrLengthMismatch
	}
	if in.Capacity < 0 {
		return ErrNegativeCapacity
	}
	var i int
	for i = 0; i < in.NbItems; i++ {
		if in.Weight[i] <= 0 {
			return ErrNonPositiveWeight
		}
		if in.Profit[i] < 0 {
			return ErrNegativeProfit
		}
	}

	return nil
}

// LoadInstance reads and validates a JSON instance file.
func LoadInstance(path string) (*Instance, error) {
	var f, err = os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("knapsack: open instance: %w", err)
	}
	defer f.Close()

	return ReadInstance(f)
}

// ReadInstance decodes and validates a JSON instance from r.
func ReadInstance(r io.Reader) (*Instance, error) {
	var in Instance
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return nil, fmt.Errorf("knapsack: decode instance: %w", err)
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	return &in, nil
}

// WriteJSON writes the instance as indented JSON. The output is
// byte-deterministic: field order follows the struct definition.
func (in *Instance) WriteJSON(w io.Writer) error {
	var buf, err = json.MarshalIndent(in, "", "  ")
	if err != nil {
		return fmt.Errorf("knapsack: encode instance: %w", err)
	}
	buf = append(buf, '\n')
	if _, err = w.Write(buf); err != nil {
		return fmt.Errorf("knapsack: write instance: %w", err)
	}

	return nil
}

// SaveInstance validates the instance and writes it to path as JSON.
func SaveInstance(in *Instance, path string) error {
	if err := in.Validate(); err != nil {
		return err
	}
	var f, err = os.Create(path)
	if err != nil {
		return fmt.Errorf("knapsack: create instance file: %w", err)
	}
	defer f.Close()

	return in.WriteJSON(f)
}

// clone returns a deep copy sharing no slices with the receiver.
func (in *Instance) clone() *Instance {
	var cp = Instance{
		NbItems:  in.NbItems,
		Capacity: in.Capacity,
		Weight:   append([]int64(nil), in.Weight...),
		Profit:   append([]int64(nil), in.Profit...),
	}

	return &cp
}
