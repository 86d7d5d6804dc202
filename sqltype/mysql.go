package sqltype

import (
	"fmt"

	"github.com/mstgnz/sqltransfer/charset"
	"github.com/mstgnz/sqltransfer/dialect"
)

// mysqlCharsets is the package-level character-set catalog every
// MySQL variant consults to validate and format its charset field.
// dialect.MYSQL is always a recognized dialect, so the error is
// unreachable and discarded.
var mysqlCharsets, _ = charset.New(dialect.MYSQL)

func normalizeMySQLCharset(name string) string {
	if _, ok := mysqlCharsets.Lookup(name); !ok {
		return "latin1"
	}
	return name
}

func mysqlMaxVarchar(cs string) int {
	switch mysqlCharsets.MaxLength(cs) {
	case 1:
		return 65532
	case 2:
		return 32766
	case 3:
		return 21844
	default:
		return 16383
	}
}

func mysqlCharsetFormat(cs string) string { return mysqlCharsets.Format(cs) }

func mysqlCharsetCategory(cs string) charset.Category { return mysqlCharsets.CategoryOf(cs) }

// textBucket buckets a raw size into MySQL's four TEXT/BLOB size
// tiers; negative or above-4294967295 values fall to the top tier.
func textBucket(size int) int {
	switch {
	case size < 0 || size > 4294967295:
		return 4294967295
	case size <= 255:
		return 255
	case size <= 65535:
		return 65535
	case size <= 16777215:
		return 16777215
	default:
		return 4294967295
	}
}

// ---- MyVarchar ----

type MyVarchar struct {
	size    int
	charset string
}

func NewMyVarchar(size int, cs string) *MyVarchar {
	cs = normalizeMySQLCharset(cs)
	max := mysqlMaxVarchar(cs)
	if size <= 0 || size > max {
		size = max
	}
	return &MyVarchar{size: size, charset: cs}
}

func (t *MyVarchar) DatatypeName() string { return "varchar" }
func (t *MyVarchar) Dialect() dialectTag  { return mysql }
func (t *MyVarchar) Render() string {
	return fmt.Sprintf("varchar(%d) %s", t.size, mysqlCharsetFormat(t.charset))
}
func (t *MyVarchar) Parameters() Params {
	return Params{DatatypeName: "varchar", CharacterSize: intp(t.size), CharacterSet: strp(t.charset)}
}
func (t *MyVarchar) convertToMySQL() Datatype { return t }
func (t *MyVarchar) convertToMSSQL() Datatype {
	unicode := mysqlCharsetCategory(t.charset) == charset.Unicode
	name := "varchar"
	if unicode {
		name = "nvarchar"
	}
	if t.size > 8000 {
		return NewMsVarchar(name, -1)
	}
	return NewMsVarchar(name, t.size)
}

// ---- MyText ----

type MyText struct {
	size    int // bucketed to {255,65535,16777215,4294967295}
	charset string
}

func NewMyText(size int, cs string) *MyText {
	return &MyText{size: textBucket(size), charset: normalizeMySQLCharset(cs)}
}

func (t *MyText) DatatypeName() string { return "text" }
func (t *MyText) Dialect() dialectTag  { return mysql }
func (t *MyText) Render() string {
	csf := mysqlCharsetFormat(t.charset)
	switch t.size {
	case 255:
		return fmt.Sprintf("tinytext %s", csf)
	case 65535:
		return fmt.Sprintf("text %s", csf)
	case 16777215:
		return fmt.Sprintf("mediumtext %s", csf)
	default:
		return fmt.Sprintf("longtext %s", csf)
	}
}
func (t *MyText) Parameters() Params {
	return Params{DatatypeName: "text", CharacterSize: intp(t.size), CharacterSet: strp(t.charset)}
}
func (t *MyText) convertToMySQL() Datatype { return t }
func (t *MyText) convertToMSSQL() Datatype {
	unicode := mysqlCharsetCategory(t.charset) == charset.Unicode
	name := "varchar"
	if unicode {
		name = "nvarchar"
	}
	if t.size <= 255 {
		return NewMsVarchar(name, 255)
	}
	return NewMsVarchar(name, -1)
}

// ---- MyOtherText (tinytext, mediumtext, longtext) ----

type MyOtherText struct {
	name    string
	charset string
}

var myOtherTextNames = map[string]bool{"tinytext": true, "mediumtext": true, "longtext": true}

func NewMyOtherText(name, cs string) *MyOtherText {
	if !myOtherTextNames[name] {
		name = "longtext"
	}
	return &MyOtherText{name: name, charset: normalizeMySQLCharset(cs)}
}

func (t *MyOtherText) DatatypeName() string { return t.name }
func (t *MyOtherText) Dialect() dialectTag  { return mysql }
func (t *MyOtherText) Render() string {
	return fmt.Sprintf("%s %s", t.name, mysqlCharsetFormat(t.charset))
}
func (t *MyOtherText) Parameters() Params {
	return Params{DatatypeName: t.name, CharacterSet: strp(t.charset)}
}
func (t *MyOtherText) convertToMySQL() Datatype { return t }
func (t *MyOtherText) convertToMSSQL() Datatype {
	unicode := mysqlCharsetCategory(t.charset) == charset.Unicode
	name := "varchar"
	if unicode {
		name = "nvarchar"
	}
	if t.name == "tinytext" {
		return NewMsVarchar(name, 255)
	}
	return NewMsVarchar(name, -1)
}

// ---- MyChar ----

type MyChar struct {
	size    int // [1,255]
	charset string
}

func NewMyChar(size int, cs string) *MyChar {
	if size <= 0 || size > 255 {
		size = 255
	}
	return &MyChar{size: size, charset: normalizeMySQLCharset(cs)}
}

func (t *MyChar) DatatypeName() string { return "char" }
func (t *MyChar) Dialect() dialectTag  { return mysql }
func (t *MyChar) Render() string {
	return fmt.Sprintf("char(%d) %s", t.size, mysqlCharsetFormat(t.charset))
}
func (t *MyChar) Parameters() Params {
	return Params{DatatypeName: "char", CharacterSize: intp(t.size), CharacterSet: strp(t.charset)}
}
func (t *MyChar) convertToMySQL() Datatype { return t }
func (t *MyChar) convertToMSSQL() Datatype {
	if mysqlCharsetCategory(t.charset) == charset.Unicode {
		return NewMsChar("nchar", t.size)
	}
	return NewMsChar("char", t.size)
}

// ---- MyBinary ----

type MyBinary struct{ size int } // [1,255]

func NewMyBinary(size int) *MyBinary {
	if size <= 0 || size > 255 {
		size = 255
	}
	return &MyBinary{size: size}
}

func (t *MyBinary) DatatypeName() string { return "binary" }
func (t *MyBinary) Dialect() dialectTag  { return mysql }
func (t *MyBinary) Render() string       { return fmt.Sprintf("binary(%d)", t.size) }
func (t *MyBinary) Parameters() Params {
	return Params{DatatypeName: "binary", CharacterSize: intp(t.size)}
}
func (t *MyBinary) convertToMySQL() Datatype { return t }
func (t *MyBinary) convertToMSSQL() Datatype { return NewMsBinary(t.size) }

// ---- MyVarbinary ----

type MyVarbinary struct{ size int } // [0,65532]

func NewMyVarbinary(size int) *MyVarbinary {
	if size < 0 || size > 65532 {
		size = 65532
	}
	return &MyVarbinary{size: size}
}

func (t *MyVarbinary) DatatypeName() string { return "varbinary" }
func (t *MyVarbinary) Dialect() dialectTag  { return mysql }
func (t *MyVarbinary) Render() string       { return fmt.Sprintf("varbinary(%d)", t.size) }
func (t *MyVarbinary) Parameters() Params {
	return Params{DatatypeName: "varbinary", CharacterSize: intp(t.size)}
}
func (t *MyVarbinary) convertToMySQL() Datatype { return t }
func (t *MyVarbinary) convertToMSSQL() Datatype { return NewMsVarbinary(t.size) }

// ---- MyBlob ----

type MyBlob struct{ size int } // bucketed like MyText

func NewMyBlob(size int) *MyBlob { return &MyBlob{size: textBucket(size)} }

func (t *MyBlob) DatatypeName() string { return "blob" }
func (t *MyBlob) Dialect() dialectTag  { return mysql }
func (t *MyBlob) Render() string {
	switch t.size {
	case 255:
		return "tinyblob"
	case 65535:
		return "blob"
	case 16777215:
		return "mediumblob"
	default:
		return "longblob"
	}
}
func (t *MyBlob) Parameters() Params {
	return Params{DatatypeName: "blob", CharacterSize: intp(t.size)}
}
func (t *MyBlob) convertToMySQL() Datatype { return t }
func (t *MyBlob) convertToMSSQL() Datatype { return NewMsVarbinary(-1) }

// ---- MyOtherBlob (tinyblob, mediumblob, longblob) ----

type MyOtherBlob struct{ name string }

var myOtherBlobNames = map[string]bool{"tinyblob": true, "mediumblob": true, "longblob": true}

func NewMyOtherBlob(name string) *MyOtherBlob {
	if !myOtherBlobNames[name] {
		name = "longblob"
	}
	return &MyOtherBlob{name: name}
}

func (t *MyOtherBlob) DatatypeName() string     { return t.name }
func (t *MyOtherBlob) Dialect() dialectTag      { return mysql }
func (t *MyOtherBlob) Render() string           { return t.name }
func (t *MyOtherBlob) Parameters() Params       { return Params{DatatypeName: t.name} }
func (t *MyOtherBlob) convertToMySQL() Datatype { return t }
func (t *MyOtherBlob) convertToMSSQL() Datatype {
	if t.name == "tinyblob" {
		return NewMsVarbinary(255)
	}
	return NewMsVarbinary(-1)
}

// ---- MyDecimal ----

type MyDecimal struct {
	precision int // [1,65]
	scale     int
}

func NewMyDecimal(precision, scale int) *MyDecimal {
	if precision <= 0 || precision > 65 {
		precision = 65
	}
	var s int
	switch {
	case scale < 0 || scale > precision:
		if precision < 30 {
			s = precision
		} else {
			s = 30
		}
	case scale > 30:
		if precision < 30 {
			s = precision
		} else {
			s = 30
		}
	default:
		s = scale
	}
	return &MyDecimal{precision: precision, scale: s}
}

func (t *MyDecimal) DatatypeName() string { return "decimal" }
func (t *MyDecimal) Dialect() dialectTag  { return mysql }
func (t *MyDecimal) Render() string {
	return fmt.Sprintf("decimal(%d, %d)", t.precision, t.scale)
}
func (t *MyDecimal) Parameters() Params {
	return Params{DatatypeName: "decimal", NumericPrecision: intp(t.precision), NumericScale: intp(t.scale)}
}
func (t *MyDecimal) convertToMySQL() Datatype { return t }
func (t *MyDecimal) convertToMSSQL() Datatype {
	if t.precision > 38 {
		return NewMsNumeric("numeric", 38, t.scale)
	}
	return NewMsNumeric("numeric", t.precision, t.scale)
}

// ---- MyFloat (float, double) ----

type MyFloat struct {
	name      string
	precision int // derived: float->12, double->22
}

func NewMyFloat(name string) *MyFloat {
	if name != "float" && name != "double" {
		name = "double"
	}
	precision := 22
	if name == "float" {
		precision = 12
	}
	return &MyFloat{name: name, precision: precision}
}

func (t *MyFloat) DatatypeName() string { return t.name }
func (t *MyFloat) Dialect() dialectTag  { return mysql }
func (t *MyFloat) Render() string {
	if t.name == "float" {
		return fmt.Sprintf("float(%d)", t.precision)
	}
	return "double"
}
func (t *MyFloat) Parameters() Params       { return Params{DatatypeName: t.name} }
func (t *MyFloat) convertToMySQL() Datatype { return t }
func (t *MyFloat) convertToMSSQL() Datatype {
	if t.name == "double" {
		return NewMsFloat("float")
	}
	return NewMsFloat("real")
}

// ---- MyBit ----

type MyBit struct{ precision int } // [1,64]

func NewMyBit(precision int) *MyBit {
	if precision <= 0 || precision > 64 {
		precision = 64
	}
	return &MyBit{precision: precision}
}

func (t *MyBit) DatatypeName() string { return "bit" }
func (t *MyBit) Dialect() dialectTag  { return mysql }
func (t *MyBit) Render() string {
	if t.precision == 1 {
		return "bit"
	}
	return fmt.Sprintf("bit(%d)", t.precision)
}
func (t *MyBit) Parameters() Params {
	return Params{DatatypeName: "bit", NumericPrecision: intp(t.precision)}
}
func (t *MyBit) convertToMySQL() Datatype { return t }
func (t *MyBit) convertToMSSQL() Datatype { return NewMsNumeric("numeric", 20, 0) }

// ---- MyInteger (tinyint, smallint, mediumint, int, bigint, serial) ----

type MyInteger struct {
	name           string
	signedUnsigned string
}

var myIntegerNames = map[string]bool{
	"int": true, "tinyint": true, "smallint": true, "mediumint": true, "bigint": true, "serial": true,
}

func NewMyInteger(name, signedUnsigned string) *MyInteger {
	if !myIntegerNames[name] {
		name = "bigint"
	}
	if signedUnsigned != "signed" && signedUnsigned != "unsigned" {
		signedUnsigned = "signed"
	}
	return &MyInteger{name: name, signedUnsigned: signedUnsigned}
}

func (t *MyInteger) DatatypeName() string { return t.name }
func (t *MyInteger) Dialect() dialectTag  { return mysql }
func (t *MyInteger) Render() string {
	if t.name == "serial" {
		return "bigint unsigned"
	}
	if t.signedUnsigned == "unsigned" {
		return fmt.Sprintf("%s unsigned", t.name)
	}
	return t.name
}
func (t *MyInteger) Parameters() Params {
	return Params{DatatypeName: t.name}
}
func (t *MyInteger) convertToMySQL() Datatype { return t }
func (t *MyInteger) convertToMSSQL() Datatype {
	switch t.name {
	case "int":
		return NewMsInteger("bigint")
	case "tinyint":
		return NewMsInteger("smallint")
	case "smallint", "mediumint":
		return NewMsInteger("int")
	default: // bigint, serial
		return NewMsNumeric("numeric", 20, 0)
	}
}

// ---- MyDate (no parameters) ----

type MyDate struct{}

func NewMyDate() *MyDate { return &MyDate{} }

func (t *MyDate) DatatypeName() string     { return "date" }
func (t *MyDate) Dialect() dialectTag      { return mysql }
func (t *MyDate) Render() string           { return "date" }
func (t *MyDate) Parameters() Params       { return Params{DatatypeName: "date"} }
func (t *MyDate) convertToMySQL() Datatype { return t }
func (t *MyDate) convertToMSSQL() Datatype { return NewMsDatetimeOne("date") }

// ---- MyDatetime (timestamp, datetime, time) ----

type MyDatetime struct {
	name      string
	precision int // [0,6]
}

var myDatetimeNames = map[string]bool{"timestamp": true, "datetime": true, "time": true}

func NewMyDatetime(name string, precision int) *MyDatetime {
	if !myDatetimeNames[name] {
		name = "datetime"
	}
	if precision < 0 || precision > 6 {
		precision = 6
	}
	return &MyDatetime{name: name, precision: precision}
}

func (t *MyDatetime) DatatypeName() string { return t.name }
func (t *MyDatetime) Dialect() dialectTag  { return mysql }
func (t *MyDatetime) Render() string       { return fmt.Sprintf("%s(%d)", t.name, t.precision) }
func (t *MyDatetime) Parameters() Params {
	return Params{DatatypeName: t.name, DatetimePrecision: intp(t.precision)}
}
func (t *MyDatetime) convertToMySQL() Datatype { return t }
func (t *MyDatetime) convertToMSSQL() Datatype {
	if t.name == "time" {
		return NewMsDatetimeTwo("time", t.precision)
	}
	return NewMsDatetimeTwo("datetime2", t.precision)
}

// ---- MyYear (no parameters) ----

type MyYear struct{}

func NewMyYear() *MyYear { return &MyYear{} }

func (t *MyYear) DatatypeName() string     { return "year" }
func (t *MyYear) Dialect() dialectTag      { return mysql }
func (t *MyYear) Render() string           { return "year" }
func (t *MyYear) Parameters() Params       { return Params{DatatypeName: "year"} }
func (t *MyYear) convertToMySQL() Datatype { return t }
func (t *MyYear) convertToMSSQL() Datatype { return NewMsInteger("int") }
