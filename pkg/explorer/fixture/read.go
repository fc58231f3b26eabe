package fixture

import (
	"io"
	"log"
	"os"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Decoder reads the next document from its input into a value.
// *yaml.Decoder and *json.Decoder satisfy it.
type Decoder interface {
	Decode(o any) error
}

func yamlDecoderFactory(r io.Reader) Decoder {
	return yaml.NewDecoder(r)
}

func jsonDecoderFactory(r io.Reader) Decoder {
	return json.NewDecoder(r)
}

// ReadFile opens filePath and decodes it into o.
// A missing file is not an error unless required is set.
func ReadFile(filePath string, required bool, o any, newDecoder func(r io.Reader) Decoder) (err error) {
	var file *os.File
	if file, err = os.Open(filePath); err != nil {
		if os.IsNotExist(err) && !required {
			err = nil
		}
		return err
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.Printf("failed to close file %v: %v", filePath, err)
		}
	}()
	return newDecoder(file).Decode(o)
}
