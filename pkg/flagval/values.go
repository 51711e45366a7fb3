package flagval

import (
	"fmt"
	"strconv"

	"github.com/dmitrymomot/argkit/pkg/validator"
)

// FilePath is a flag value that must name an existing regular file.
type FilePath string

func (f *FilePath) Set(s string) error {
	path, err := validator.ValidateExistingFile(s)
	if err != nil {
		return err
	}
	*f = FilePath(path)
	return nil
}

func (f *FilePath) String() string { return string(*f) }
func (f *FilePath) Type() string   { return "filepath" }

// DirPath is a flag value that must name an existing directory. The stored
// value is the absolute path.
type DirPath string

func (d *DirPath) Set(s string) error {
	path, err := validator.ValidateExistingDirectory(s)
	if err != nil {
		return err
	}
	*d = DirPath(path)
	return nil
}

func (d *DirPath) String() string { return string(*d) }
func (d *DirPath) Type() string   { return "dirpath" }

// ParentedPath is a flag value for output paths: the path itself need not
// exist, but its parent directory must. The stored value is the absolute path.
type ParentedPath string

func (p *ParentedPath) Set(s string) error {
	path, err := validator.ValidateParentExists(s)
	if err != nil {
		return err
	}
	*p = ParentedPath(path)
	return nil
}

func (p *ParentedPath) String() string { return string(*p) }
func (p *ParentedPath) Type() string   { return "path" }

// ProxyURL is a flag value holding an optional proxy URL. The empty string is
// accepted so the flag can stay unset.
type ProxyURL string

func (p *ProxyURL) Set(s string) error {
	proxy, err := validator.ValidateProxyURL(s)
	if err != nil {
		return err
	}
	*p = ProxyURL(proxy)
	return nil
}

func (p *ProxyURL) String() string { return string(*p) }
func (p *ProxyURL) Type() string   { return "proxyURL" }

// BoundedInt is an integer flag constrained to [Min, Max). The upper bound is
// exclusive.
type BoundedInt struct {
	Value int
	Min   int
	Max   int
}

// NewBoundedInt builds a BoundedInt with a default value. The default itself
// is not validated so callers can require an explicit flag by choosing a
// default outside the bounds.
func NewBoundedInt(def, min, max int) *BoundedInt {
	return &BoundedInt{Value: def, Min: min, Max: max}
}

func (b *BoundedInt) Set(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("%w: %q is not an integer", validator.ErrInvalidType, s)
	}

	if rule := validator.BetweenNum("value", v, b.Min, b.Max); !rule.Check() {
		return fmt.Errorf("%w: %s", validator.ErrOutOfRange, rule.Error.Message)
	}

	b.Value = v
	return nil
}

func (b *BoundedInt) String() string { return strconv.Itoa(b.Value) }
func (b *BoundedInt) Type() string   { return "int" }

// BoundedString is a string flag whose length is constrained to
// [MinLen, MaxLen). The upper bound is exclusive.
type BoundedString struct {
	Value  string
	MinLen int
	MaxLen int
}

func NewBoundedString(def string, minLen, maxLen int) *BoundedString {
	return &BoundedString{Value: def, MinLen: minLen, MaxLen: maxLen}
}

func (b *BoundedString) Set(s string) error {
	err := validator.Apply(
		validator.MinLen("value", s, b.MinLen),
		validator.MaxLen("value", s, b.MaxLen),
	)
	if verrs := validator.ExtractValidationErrors(err); len(verrs) > 0 {
		return fmt.Errorf("%w: %s", validator.ErrOutOfRange, verrs[0].Message)
	}

	b.Value = s
	return nil
}

func (b *BoundedString) String() string { return b.Value }
func (b *BoundedString) Type() string   { return "string" }
