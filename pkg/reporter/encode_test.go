package reporter_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/yaklabco/lintreport/internal/logging"
	"github.com/yaklabco/lintreport/pkg/reporter"
)

// latin1Sink is a sink that declares ISO 8859-1 as its encoding.
type latin1Sink struct {
	bytes.Buffer
}

func (*latin1Sink) Encoding() encoding.Encoding { return charmap.ISO8859_1 }

func quietOptions() reporter.Options {
	return reporter.Options{Logger: logging.NewWithWriter(&bytes.Buffer{}, "error")}
}

func TestWriteln_SinkDeclaredEncoding(t *testing.T) {
	t.Parallel()

	sink := &latin1Sink{}
	opts := quietOptions()
	opts.Writer = sink
	// The sink's own encoding wins over the option.
	opts.Encoding = unicode.UTF8
	base := reporter.NewBase(opts, nil)

	assert.NotPanics(t, func() { base.Writeln("café €") })
	require.NoError(t, base.Err())

	out := sink.Bytes()
	require.Len(t, out, len("caf")+1+1+1+1)
	assert.Equal(t, "caf", string(out[:3]))
	assert.Equal(t, byte(0xE9), out[3])
	assert.Equal(t, byte(' '), out[4])
	assert.NotContains(t, string(out), "€")
	assert.Equal(t, byte('\n'), out[len(out)-1])
}

func TestEncode_ForcedEncoding(t *testing.T) {
	t.Parallel()

	opts := quietOptions()
	opts.Writer = &bytes.Buffer{}
	opts.Encoding = charmap.Windows1252
	base := reporter.NewBase(opts, nil)

	assert.Equal(t, []byte{0x80}, base.Encode("€"))
	assert.Equal(t, []byte("plain"), base.Encode("plain"))

	// U+2603 is not in windows-1252; a single replacement byte is written.
	assert.Len(t, base.Encode("☃"), 1)
}

func TestEncode_LocaleEncoding(t *testing.T) {
	t.Setenv("LC_ALL", "fr_FR.ISO-8859-1@euro")

	opts := quietOptions()
	opts.Writer = &bytes.Buffer{}
	base := reporter.NewBase(opts, nil)

	assert.Equal(t, []byte{0xE9}, base.Encode("é"))
}

func TestEncode_LocaleWithoutCodesetIsUTF8(t *testing.T) {
	t.Setenv("LC_ALL", "C")

	opts := quietOptions()
	opts.Writer = &bytes.Buffer{}
	base := reporter.NewBase(opts, nil)

	assert.Equal(t, []byte("é"), base.Encode("é"))
}

func TestLookupEncoding(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		sample  string
		want    []byte
		wantNil bool
		wantErr bool
	}{
		{name: "empty", input: "", wantNil: true},
		{name: "utf-8", input: "utf-8", sample: "é", want: []byte("é")},
		{name: "utf8 label", input: "utf8", sample: "é", want: []byte("é")},
		{name: "iana latin1", input: "ISO-8859-1", sample: "é", want: []byte{0xE9}},
		{name: "latin1 alias", input: "latin1", sample: "é", want: []byte{0xE9}},
		{name: "windows-1252", input: "windows-1252", sample: "€", want: []byte{0x80}},
		{name: "unknown", input: "klingon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			enc, err := reporter.LookupEncoding(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, reporter.ErrUnknownEncoding)
				return
			}
			require.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, enc)
				return
			}
			require.NotNil(t, enc)

			opts := quietOptions()
			opts.Writer = &bytes.Buffer{}
			opts.Encoding = enc
			base := reporter.NewBase(opts, nil)
			assert.Equal(t, tt.want, base.Encode(tt.sample))
		})
	}
}

// utf16Sink declares little-endian UTF-16 with a byte order mark.
type utf16Sink struct {
	bytes.Buffer
}

func (*utf16Sink) Encoding() encoding.Encoding {
	return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
}

func TestWriteln_UTF16StreamHasSingleBOM(t *testing.T) {
	t.Parallel()

	sink := &utf16Sink{}
	opts := quietOptions()
	opts.Writer = sink
	base := reporter.NewBase(opts, nil)

	base.Writeln("ab")
	base.Writeln("cd")
	require.NoError(t, base.Err())

	assert.Equal(t, []byte{
		0xff, 0xfe,
		'a', 0, 'b', 0, '\n', 0,
		'c', 0, 'd', 0, '\n', 0,
	}, sink.Bytes())

	decoded, err := unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder().Bytes(sink.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "ab\ncd\n", string(decoded))
}

func TestWriteln_UTF16FromConfigName(t *testing.T) {
	t.Parallel()

	enc, err := reporter.LookupEncoding("UTF-16LE")
	require.NoError(t, err)

	var buf bytes.Buffer
	opts := quietOptions()
	opts.Writer = &buf
	opts.Encoding = enc
	base := reporter.NewBase(opts, nil)

	base.Write("x")
	base.Writeln("é")
	require.NoError(t, base.Err())

	assert.Equal(t, []byte{'x', 0, 0xE9, 0, '\n', 0}, buf.Bytes())
}
