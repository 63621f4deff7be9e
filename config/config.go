// Package config resolves and validates the diffdoc configuration file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"regexp"
	"strings"

	"github.com/fwojciec/diffdoc"
	"github.com/go-playground/validator/v10"
)

// file mirrors the configuration schema. Defaults are filled in before
// decoding, so absent keys keep their default and present keys override it.
// The schema is closed: unknown keys are rejected.
type file struct {
	Language              string `json:"language" validate:"required"`
	Verbose               bool   `json:"verbose"`
	DiffFont              string `json:"diff_font" validate:"required"`
	DiffFontSize          int    `json:"diff_font_size" validate:"min=6,max=72"`
	OpenAfterCreation     bool   `json:"open_after_creation"`
	HeadingLevel          int    `json:"heading_level" validate:"min=1,max=9"`
	AddColor              string `json:"add_color" validate:"fillcolor"`
	RemoveColor           string `json:"remove_color" validate:"fillcolor"`
	NeutralColor          string `json:"neutral_color" validate:"fillcolor"`
	AddSymbol             string `json:"add_symbol"`
	RemoveSymbol          string `json:"remove_symbol"`
	NeutralSymbol         string `json:"neutral_symbol"`
	FileEncoding          string `json:"file_encoding" validate:"required"`
	IncludeFirstCommit    bool   `json:"include_first_commit"`
	IgnoreFile            string `json:"ignore_file" validate:"required"`
	IncludeUnchangedLines bool   `json:"include_unchanged_lines"`
	IncludeImages         bool   `json:"include_images"`
	InsertPageBreaks      bool   `json:"insert_page_breaks"`
}

var fillColorRE = regexp.MustCompile(`^[0-9A-Fa-f]{6}$`)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report violations under the JSON key, not the Go field name.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation("fillcolor", func(fl validator.FieldLevel) bool {
		return fillColorRE.MatchString(fl.Field().String())
	})
}

// Defaults returns the schema defaults applied before user overrides.
func Defaults() diffdoc.Config {
	return diffdoc.Config{
		Verbose:               false,
		DiffFont:              "Courier New",
		DiffFontSize:          8,
		OpenAfterCreation:     false,
		HeadingLevel:          2,
		AddColor:              "D0FFD0",
		RemoveColor:           "FFD0D0",
		NeutralColor:          "F5F5F5",
		AddSymbol:             "+",
		RemoveSymbol:          "-",
		NeutralSymbol:         " ",
		FileEncoding:          "utf-8",
		IncludeFirstCommit:    true,
		IgnoreFile:            ".gddignore",
		IncludeUnchangedLines: true,
		IncludeImages:         false,
		InsertPageBreaks:      true,
	}
}

// Resolve merges the user overrides read from r with the schema defaults
// and validates the result. It is a pure function over its input: resolving
// the same document twice yields equal configurations.
func Resolve(r io.Reader) (diffdoc.Config, error) {
	f := fromConfig(Defaults())

	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return diffdoc.Config{}, decodeError(err)
	}

	if err := validate.Struct(f); err != nil {
		return diffdoc.Config{}, validationError(err)
	}
	return f.toConfig(), nil
}

// ResolveFile resolves the configuration stored at path.
func ResolveFile(path string) (diffdoc.Config, error) {
	r, err := os.Open(path)
	if err != nil {
		return diffdoc.Config{}, fmt.Errorf("config: %w", err)
	}
	defer r.Close()
	return Resolve(r)
}

// unknownFieldRE extracts the key name from the stdlib decoder's
// unknown-field error, which has no structured form.
var unknownFieldRE = regexp.MustCompile(`unknown field "(.+)"`)

func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &diffdoc.ConfigError{Field: typeErr.Field, Constraint: "must be of type " + typeErr.Type.String()}
	}
	if m := unknownFieldRE.FindStringSubmatch(err.Error()); m != nil {
		return &diffdoc.ConfigError{Field: m[1], Constraint: "unknown key"}
	}
	return fmt.Errorf("config: %w", err)
}

func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("config: %w", err)
	}
	fe := verrs[0]

	var constraint string
	switch fe.Tag() {
	case "required":
		constraint = "required"
	case "fillcolor":
		constraint = "must be a 6-hex-digit color"
	default:
		constraint = fe.Tag() + "=" + fe.Param()
	}
	return &diffdoc.ConfigError{Field: fe.Field(), Constraint: constraint}
}

func fromConfig(c diffdoc.Config) file {
	return file{
		Language:              c.Language,
		Verbose:               c.Verbose,
		DiffFont:              c.DiffFont,
		DiffFontSize:          c.DiffFontSize,
		OpenAfterCreation:     c.OpenAfterCreation,
		HeadingLevel:          c.HeadingLevel,
		AddColor:              c.AddColor,
		RemoveColor:           c.RemoveColor,
		NeutralColor:          c.NeutralColor,
		AddSymbol:             c.AddSymbol,
		RemoveSymbol:          c.RemoveSymbol,
		NeutralSymbol:         c.NeutralSymbol,
		FileEncoding:          c.FileEncoding,
		IncludeFirstCommit:    c.IncludeFirstCommit,
		IgnoreFile:            c.IgnoreFile,
		IncludeUnchangedLines: c.IncludeUnchangedLines,
		IncludeImages:         c.IncludeImages,
		InsertPageBreaks:      c.InsertPageBreaks,
	}
}

func (f file) toConfig() diffdoc.Config {
	return diffdoc.Config{
		Language:              f.Language,
		Verbose:               f.Verbose,
		DiffFont:              f.DiffFont,
		DiffFontSize:          f.DiffFontSize,
		OpenAfterCreation:     f.OpenAfterCreation,
		HeadingLevel:          f.HeadingLevel,
		AddColor:              f.AddColor,
		RemoveColor:           f.RemoveColor,
		NeutralColor:          f.NeutralColor,
		AddSymbol:             f.AddSymbol,
		RemoveSymbol:          f.RemoveSymbol,
		NeutralSymbol:         f.NeutralSymbol,
		FileEncoding:          f.FileEncoding,
		IncludeFirstCommit:    f.IncludeFirstCommit,
		IgnoreFile:            f.IgnoreFile,
		IncludeUnchangedLines: f.IncludeUnchangedLines,
		IncludeImages:         f.IncludeImages,
		InsertPageBreaks:      f.InsertPageBreaks,
	}
}
