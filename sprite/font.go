package sprite

import (
	"fmt"

	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

var (
	Regular   *opentype.Font
	Monospace *opentype.Font
)

var fontMap = map[string]struct {
	dst **opentype.Font
	ttf []byte
}{
	"regular":   {&Regular, goregular.TTF},
	"monospace": {&Monospace, gomono.TTF},
}

func loadFonts() error {
	for name, f := range fontMap {
		parsed, err := opentype.Parse(f.ttf)
		if err != nil {
			return fmt.Errorf("parsing %s font: %w", name, err)
		}
		*f.dst = parsed
	}
	return nil
}
