package xmlrs

import "fmt"

func (e ErrInvalidName) Error() string {
	return fmt.Sprintf("invalid XML name: '%s'", e.Name)
}

func (e ErrUnsupportedEncoding) Error() string {
	return "unsupported encoding: '" + e.Name + "'"
}
