package options

import "strings"

// PositionFormat is the layout of a position file.
type PositionFormat string

// Position file layouts.
const (
	PositionASCII PositionFormat = "ASCII"
	PositionCSV   PositionFormat = "CSV"
)

// Units selects the measurement units of a position file.
type Units string

// Position file units.
const (
	UnitsMillimeters Units = "millimeters"
	UnitsInches      Units = "inches"
)

// BoMFormat is the KiBoM output format.
type BoMFormat string

// KiBoM output formats.
const (
	BoMHTML BoMFormat = "HTML"
	BoMCSV  BoMFormat = "CSV"
)

// PositionOptions configures pick and place files.
type PositionOptions struct {
	Format                       PositionFormat `json:"format" yaml:"format" msgpack:"format"`
	Units                        Units          `json:"units" yaml:"units" msgpack:"units"`
	SeparateFilesForFrontAndBack bool           `json:"separate_files_for_front_and_back" yaml:"separate_files_for_front_and_back" msgpack:"separate_files_for_front_and_back"`
	OnlySMD                      bool           `json:"only_smd" yaml:"only_smd" msgpack:"only_smd"`
}

// Kind implements Options.
func (*PositionOptions) Kind() Kind { return KindPosition }

// SetFormat sets the file layout from its name, case-insensitively.
func (p *PositionOptions) SetFormat(name string) error {
	switch f := PositionFormat(strings.ToUpper(name)); f {
	case PositionASCII, PositionCSV:
		p.Format = f
		return nil
	default:
		return invalid("format", name, "unknown position format, use ASCII or CSV")
	}
}

// SetUnits sets the units from their name, case-insensitively.
func (p *PositionOptions) SetUnits(name string) error {
	switch u := Units(strings.ToLower(name)); u {
	case UnitsMillimeters, UnitsInches:
		p.Units = u
		return nil
	default:
		return invalid("units", name, "unknown units, use millimeters or inches")
	}
}

// KiBoMOptions configures a KiBoM bill of materials.
type KiBoMOptions struct {
	Format BoMFormat `json:"format" yaml:"format" msgpack:"format"`
}

// Kind implements Options.
func (*KiBoMOptions) Kind() Kind { return KindKiBoM }

// SetFormat sets the output format from its name, case-insensitively.
func (k *KiBoMOptions) SetFormat(name string) error {
	switch f := BoMFormat(strings.ToUpper(name)); f {
	case BoMHTML, BoMCSV:
		k.Format = f
		return nil
	default:
		return invalid("format", name, "unknown BoM format, use HTML or CSV")
	}
}

// IBoMOptions configures an interactive HTML bill of materials.
type IBoMOptions struct {
	// Blacklist holds reference designators left out of the BoM.
	Blacklist  []string `json:"blacklist,omitempty" yaml:"blacklist,omitempty" msgpack:"blacklist,omitempty"`
	NameFormat string   `json:"name_format,omitempty" yaml:"name_format,omitempty" msgpack:"name_format,omitempty"`
}

// Kind implements Options.
func (*IBoMOptions) Kind() Kind { return KindIBoM }

// SchPrintOptions configures printing the schematic to PDF.
type SchPrintOptions struct {
	Output string `json:"output,omitempty" yaml:"output,omitempty" msgpack:"output,omitempty"`
}

// Kind implements Options.
func (*SchPrintOptions) Kind() Kind { return KindSchPrint }

// PCBPrintOptions configures printing board layers to one PDF.
type PCBPrintOptions struct {
	OutputName string `json:"output_name" yaml:"output_name" msgpack:"output_name"`
}

// Kind implements Options.
func (*PCBPrintOptions) Kind() Kind { return KindPCBPrint }

// SetOutputName sets the PDF file name.
func (p *PCBPrintOptions) SetOutputName(name string) error {
	if strings.TrimSpace(name) == "" {
		return invalid("output_name", name, "must not be empty")
	}
	p.OutputName = name
	return nil
}
