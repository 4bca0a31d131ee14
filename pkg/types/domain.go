package types

// Size is one byte count expressed in three units.
type Size struct {
	// Total bytes.
	// example: 9200000000
	Bytes float64 `json:"bytes" yaml:"bytes" example:"9200000000"`
	// Bytes / 1024^2.
	// example: 8773.80
	MiB float64 `json:"mib" yaml:"mib" example:"8773.80"`
	// Bytes / 1024^3.
	// example: 8.57
	GiB float64 `json:"gib" yaml:"gib" example:"8.57"`
}

// Estimate is the result of sizing one model under one quantization.
type Estimate struct {
	// Parameter string as given by the caller.
	// example: 9.2B
	Parameter string `json:"parameter" yaml:"parameter" example:"9.2B"`
	// Quantization tag as given by the caller.
	// example: Q4_0
	Quantization string `json:"quantization" yaml:"quantization" example:"Q4_0"`
	// Parsed parameter count.
	// example: 9200000000
	Params int64 `json:"params" yaml:"params" example:"9200000000"`
	// Bits per parameter looked up for the quantization tag.
	// example: 8
	Bits int `json:"bits_per_param" yaml:"bits_per_param" example:"8"`
	Size Size `json:"size" yaml:"size"`
	// Rounded binary-unit rendering of Size.Bytes.
	// example: 8.568GiB
	Human string `json:"human" yaml:"human" example:"8.568GiB"`
}
