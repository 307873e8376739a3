package convert

import (
	"encoding"
	stderrors "errors"
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/seqbind/errors"
	"github.com/ygrebnov/seqbind/token"
)

// Literal converts tokens using Go literal syntax for the element kind.
// Absent tokens produce the zero value of the element type.
var Literal Converter = ConverterFunc(convertLiteral)

var (
	durationType        = reflect.TypeOf(time.Duration(0))
	urlType             = reflect.TypeOf(url.URL{})
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
)

func convertLiteral(elem reflect.Type, tok token.Token) (reflect.Value, error) {
	if elem == nil {
		return reflect.Value{}, errors.ErrNilType
	}
	out := reflect.New(elem).Elem()
	if !tok.Present {
		return out, nil
	}
	if err := setLiteral(out, tok.Value); err != nil {
		if stderrors.Is(err, errors.ErrUnsupportedElement) {
			return reflect.Value{}, err
		}
		return reflect.Value{}, errorc.With(
			errors.ErrConversion,
			errorc.String(errors.ErrorFieldElementType, elem.String()),
			errorc.String(errors.ErrorFieldToken, tok.Value),
			errorc.Error(errors.ErrorFieldCause, err),
		)
	}
	return out, nil
}

// setLiteral parses lit into the settable value target.
// Pointer targets are allocated and the pointed value is set.
func setLiteral(target reflect.Value, lit string) error {
	typ := target.Type()

	// Handle special cases: time.Duration and url.URL typed values
	switch typ {
	case durationType:
		d, err := time.ParseDuration(strings.TrimSpace(lit))
		if err != nil {
			return fmt.Errorf("parse duration: %w", err)
		}
		target.SetInt(int64(d))
		return nil
	case urlType:
		u, err := url.Parse(lit)
		if err != nil {
			return fmt.Errorf("parse url: %w", err)
		}
		target.Set(reflect.ValueOf(*u))
		return nil
	}

	if typ.Kind() != reflect.Ptr && reflect.PointerTo(typ).Implements(textUnmarshalerType) {
		u := target.Addr().Interface().(encoding.TextUnmarshaler)
		if err := u.UnmarshalText([]byte(lit)); err != nil {
			return fmt.Errorf("unmarshal text: %w", err)
		}
		return nil
	}

	switch typ.Kind() {
	case reflect.String:
		target.SetString(lit)
	case reflect.Bool:
		switch strings.ToLower(strings.TrimSpace(lit)) {
		case "1", "true", "t", "yes", "y", "on":
			target.SetBool(true)
		case "0", "false", "f", "no", "n", "off":
			target.SetBool(false)
		default:
			return fmt.Errorf("parse bool: %q", lit)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		iv, err := strconv.ParseInt(strings.TrimSpace(lit), 10, typ.Bits())
		if err != nil {
			return fmt.Errorf("parse int: %w", err)
		}
		target.SetInt(iv)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		uv, err := strconv.ParseUint(strings.TrimSpace(lit), 10, typ.Bits())
		if err != nil {
			return fmt.Errorf("parse uint: %w", err)
		}
		target.SetUint(uv)
	case reflect.Float32, reflect.Float64:
		fv, err := strconv.ParseFloat(strings.TrimSpace(lit), typ.Bits())
		if err != nil {
			return fmt.Errorf("parse float: %w", err)
		}
		target.SetFloat(fv)
	case reflect.Complex64, reflect.Complex128:
		cv, err := strconv.ParseComplex(strings.TrimSpace(lit), typ.Bits())
		if err != nil {
			return fmt.Errorf("parse complex: %w", err)
		}
		target.SetComplex(cv)
	case reflect.Ptr:
		pv := reflect.New(typ.Elem())
		if err := setLiteral(pv.Elem(), lit); err != nil {
			return err
		}
		target.Set(pv)
	default:
		return errorc.With(
			errors.ErrUnsupportedElement,
			errorc.String(errors.ErrorFieldElementType, typ.String()),
		)
	}
	return nil
}
