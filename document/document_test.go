package document_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Woodsigel/rapid-util/document"
)

func mustParse(t *testing.T, in string) *document.Value {
	t.Helper()
	v, err := document.Parse([]byte(in))
	require.NoError(t, err)
	return v
}

func TestParse_Kinds(t *testing.T) {
	assert.True(t, mustParse(t, `null`).IsNull())
	assert.True(t, mustParse(t, `true`).IsBool())
	assert.True(t, mustParse(t, `"x"`).IsString())
	assert.True(t, mustParse(t, `1`).IsNumber())
	assert.True(t, mustParse(t, `{}`).IsObject())
	assert.True(t, mustParse(t, `[]`).IsArray())
}

func TestNumber_Classification(t *testing.T) {
	cases := []struct {
		text                              string
		isInt, isInt64, isUint64, isFloat bool
	}{
		{"0", true, true, true, true},
		{"2147483647", true, true, true, true},
		{"2147483648", false, true, true, true},
		{"-2147483648", true, true, false, true},
		{"-2147483649", false, true, false, true},
		{"9223372036854775807", false, true, true, true},
		{"9223372036854775808", false, false, true, true},
		{"18446744073709551615", false, false, true, true},
		{"-9223372036854775808", false, true, false, true},
		{"1.5", false, false, false, true},
		{"-0.25", false, false, false, true},
		{"1e3", false, false, false, true},
		{"1e300", false, false, false, false},
	}
	for _, c := range cases {
		v := document.Number(c.text)
		assert.Equal(t, c.isInt, v.IsInt(), "IsInt %s", c.text)
		assert.Equal(t, c.isInt64, v.IsInt64(), "IsInt64 %s", c.text)
		assert.Equal(t, c.isUint64, v.IsUint64(), "IsUint64 %s", c.text)
		assert.Equal(t, c.isFloat, v.IsFloat(), "IsFloat %s", c.text)
		assert.True(t, v.IsDouble(), "IsDouble %s", c.text)
	}
}

func TestNumber_GettersAndText(t *testing.T) {
	v := document.Number("42")
	assert.Equal(t, int32(42), v.Int())
	assert.Equal(t, int64(42), v.Int64())
	assert.Equal(t, uint64(42), v.Uint64())
	assert.Equal(t, float64(42), v.Double())
	assert.Equal(t, "42", v.NumberText())

	// whole floats keep integer form through the constructors
	assert.Equal(t, "2", document.Double(2.0).NumberText())
	assert.Equal(t, "0.5", document.Float(0.5).NumberText())
}

func TestTypeName(t *testing.T) {
	assert.Equal(t, "Null", document.TypeName(document.Null()))
	assert.Equal(t, "Boolean", document.TypeName(document.Bool(true)))
	assert.Equal(t, "String", document.TypeName(document.String("s")))
	assert.Equal(t, "Object", document.TypeName(document.NewObject()))
	assert.Equal(t, "Array", document.TypeName(document.NewArray()))
	assert.Equal(t, "Int", document.TypeName(document.Number("7")))
	assert.Equal(t, "Int64", document.TypeName(document.Number("2147483648")))
	assert.Equal(t, "Uint64", document.TypeName(document.Number("9223372036854775808")))
	assert.Equal(t, "Double", document.TypeName(document.Number("1.5")))
}

func TestParse_ObjectOrderPreserved(t *testing.T) {
	v := mustParse(t, `{"b":1,"a":2,"c":{"z":[1,2,3],"y":null}}`)
	out, err := document.Serialize(v)
	require.NoError(t, err)
	assert.Equal(t, `{"b":1,"a":2,"c":{"z":[1,2,3],"y":null}}`, out)
}

func TestParse_NumberLiteralPreserved(t *testing.T) {
	v := mustParse(t, `[1.50, 1e3, -0, 18446744073709551615]`)
	out, err := document.Serialize(v)
	require.NoError(t, err)
	assert.Equal(t, `[1.50,1e3,-0,18446744073709551615]`, out)
}

func TestParse_EmptyInput(t *testing.T) {
	for _, in := range []string{"", "  ", "\n\t"} {
		_, err := document.Parse([]byte(in))
		assert.ErrorIs(t, err, document.ErrEmptyInput, "input %q", in)
	}
}

func TestParse_InvalidSyntax(t *testing.T) {
	for _, in := range []string{`{`, `{"a"}`, `[1,]`, `tru`, `{"a":1}{"b":2}`, `1 2`} {
		_, err := document.Parse([]byte(in))
		require.Error(t, err, "input %q", in)
		var se *document.SyntaxError
		assert.ErrorAs(t, err, &se, "input %q", in)
		assert.Equal(t, "The provided JSON text has invalid syntax", err.Error())
	}
}

func TestParse_DuplicateKeysLastWins(t *testing.T) {
	v := mustParse(t, `{"a":1,"a":2}`)
	m, ok := v.Member("a")
	require.True(t, ok)
	assert.Equal(t, int32(2), m.Int())
	assert.Len(t, v.Members(), 1)
}

func TestSerialize_StringEscaping(t *testing.T) {
	obj := document.NewObject()
	obj.Set("s", document.String("a\"b\\c\nd"))
	out, err := document.Serialize(obj)
	require.NoError(t, err)
	assert.Equal(t, `{"s":"a\"b\\c\nd"}`, out)
}

func TestObject_SetReplacesInPlace(t *testing.T) {
	obj := document.NewObject()
	obj.Set("a", document.Int(1))
	obj.Set("b", document.Int(2))
	obj.Set("a", document.Int(3))
	out, err := document.Serialize(obj)
	require.NoError(t, err)
	assert.Equal(t, `{"a":3,"b":2}`, out)
}

func TestFromInterface_SortsMapKeys(t *testing.T) {
	v, err := document.FromInterface(map[string]any{
		"b": 1,
		"a": []any{true, nil, "x"},
	})
	require.NoError(t, err)
	out, err := document.Serialize(v)
	require.NoError(t, err)
	assert.Equal(t, `{"a":[true,null,"x"],"b":1}`, out)
}

func TestInterface_NumericShapes(t *testing.T) {
	assert.Equal(t, int64(-5), document.Number("-5").Interface())
	assert.Equal(t, uint64(18446744073709551615), document.Number("18446744073709551615").Interface())
	assert.Equal(t, 1.5, document.Number("1.5").Interface())
	assert.Nil(t, document.Null().Interface())
}

func TestFromYAML(t *testing.T) {
	v, err := document.FromYAML([]byte("name: Alice\nage: 25\ntags:\n  - a\n  - b\n"))
	require.NoError(t, err)
	out, err := document.Serialize(v)
	require.NoError(t, err)
	assert.Equal(t, `{"age":25,"name":"Alice","tags":["a","b"]}`, out)
}

func TestFromYAML_Errors(t *testing.T) {
	_, err := document.FromYAML([]byte("  \n"))
	assert.ErrorIs(t, err, document.ErrEmptyInput)

	_, err = document.FromYAML([]byte("a: [1, 2\n"))
	var se *document.SyntaxError
	assert.ErrorAs(t, err, &se)
}

func TestToYAML(t *testing.T) {
	v := mustParse(t, `{"name":"Alice","age":25}`)
	out, err := document.ToYAML(v)
	require.NoError(t, err)
	assert.Contains(t, string(out), "name: Alice")
	assert.Contains(t, string(out), "age: 25")
}

func TestParseSIMD_MatchesParse(t *testing.T) {
	in := `{"a":[1,2.5,null],"b":"x"}`
	want, err := document.Parse([]byte(in))
	require.NoError(t, err)
	got, err := document.ParseSIMD([]byte(in))
	require.NoError(t, err)

	ws, err := document.Serialize(want)
	require.NoError(t, err)
	gs, err := document.Serialize(got)
	require.NoError(t, err)
	assert.Equal(t, ws, gs)
}
