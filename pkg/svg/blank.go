package svg

import (
	"os"

	"github.com/satopan/dtreeviz/pkg/errors"
)

// blankPNG is a fixed 1x1 truecolor PNG carrying an sRGB chunk and an XMP
// orientation record. The byte sequence is the contract: callers compare
// and regenerate these files byte for byte.
var blankPNG = []byte("\x89PNG\r\n\x1a\n" +
	"\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00\x90wS\xde" +
	"\x00\x00\x00\x01sRGB\x00\xae\xce\x1c\xe9" +
	"\x00\x00\x01YiTXtXML:com.adobe.xmp\x00\x00\x00\x00\x00" +
	"<x:xmpmeta xmlns:x=\"adobe:ns:meta/\" x:xmptk=\"XMP Core 5.4.0\">\n" +
	"   <rdf:RDF xmlns:rdf=\"http://www.w3.org/1999/02/22-rdf-syntax-ns#\">\n" +
	"      <rdf:Description rdf:about=\"\"\n" +
	"            xmlns:tiff=\"http://ns.adobe.com/tiff/1.0/\">\n" +
	"         <tiff:Orientation>1</tiff:Orientation>\n" +
	"      </rdf:Description>\n" +
	"   </rdf:RDF>\n" +
	"</x:xmpmeta>\n" +
	"L\xc2'Y" +
	"\x00\x00\x00\x0cIDAT\x08\x1dc\xf8\xff\xff?\x00\x05\xfe\x02\xfe\x9f\xca-\x13" +
	"\x00\x00\x00\x00IEND\xaeB`\x82")

// WriteBlankPNG writes the canned blank raster file to path, replacing any
// existing file. The layout engine needs a raster file to measure while
// the diagram is assembled; the vector content replaces it during
// inlining. A write failure surfaces as [errors.ErrCodeFileAccess].
func WriteBlankPNG(path string) error {
	if err := os.WriteFile(path, blankPNG, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeFileAccess, err, "write %q", path)
	}
	return nil
}
