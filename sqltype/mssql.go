package sqltype

import "fmt"

// ---- MsVarchar (varchar, nvarchar) ----

type MsVarchar struct {
	name string // "varchar" | "nvarchar"
	size int    // [1,8000] or -1 (max)
}

func NewMsVarchar(name string, size int) *MsVarchar {
	if name != "varchar" && name != "nvarchar" {
		name = "varchar"
	}
	if size < -1 || size > 8000 || size == 0 {
		size = -1
	}
	return &MsVarchar{name: name, size: size}
}

func (t *MsVarchar) DatatypeName() string { return t.name }
func (t *MsVarchar) Dialect() dialectTag  { return mssql }
func (t *MsVarchar) Render() string {
	if t.size == -1 {
		return fmt.Sprintf("%s(max)", t.name)
	}
	return fmt.Sprintf("%s(%d)", t.name, t.size)
}
func (t *MsVarchar) Parameters() Params {
	return Params{DatatypeName: t.name, CharacterSize: intp(t.size)}
}
func (t *MsVarchar) convertToMSSQL() Datatype { return t }
func (t *MsVarchar) convertToMySQL() Datatype {
	unicode := t.name == "nvarchar"
	cs := "latin1"
	if unicode {
		cs = "utf8mb4"
	}
	if t.size == -1 {
		return NewMyOtherText("longtext", cs)
	}
	return NewMyVarchar(t.size, cs)
}

// ---- MsText (text, ntext) ----

type MsText struct{ name string }

func NewMsText(name string) *MsText {
	if name != "text" && name != "ntext" {
		name = "text"
	}
	return &MsText{name: name}
}

func (t *MsText) DatatypeName() string      { return t.name }
func (t *MsText) Dialect() dialectTag       { return mssql }
func (t *MsText) Render() string            { return t.name }
func (t *MsText) Parameters() Params        { return Params{DatatypeName: t.name} }
func (t *MsText) convertToMSSQL() Datatype  { return t }
func (t *MsText) convertToMySQL() Datatype {
	if t.name == "ntext" {
		return NewMyOtherText("longtext", "utf8mb4")
	}
	return NewMyOtherText("longtext", "latin1")
}

// ---- MsChar (char, nchar) ----

type MsChar struct {
	name string
	size int // [1,8000]
}

func NewMsChar(name string, size int) *MsChar {
	if name != "char" && name != "nchar" {
		name = "char"
	}
	if size <= 0 || size > 8000 {
		size = 8000
	}
	return &MsChar{name: name, size: size}
}

func (t *MsChar) DatatypeName() string { return t.name }
func (t *MsChar) Dialect() dialectTag  { return mssql }
func (t *MsChar) Render() string       { return fmt.Sprintf("%s(%d)", t.name, t.size) }
func (t *MsChar) Parameters() Params {
	return Params{DatatypeName: t.name, CharacterSize: intp(t.size)}
}
func (t *MsChar) convertToMSSQL() Datatype { return t }
func (t *MsChar) convertToMySQL() Datatype {
	unicode := t.name == "nchar"
	cs := "latin1"
	if unicode {
		cs = "utf8mb4"
	}
	if t.size <= 255 {
		return NewMyChar(t.size, cs)
	}
	return NewMyVarchar(t.size, cs)
}

// ---- MsBinary ----

type MsBinary struct{ size int } // [1,8000]

func NewMsBinary(size int) *MsBinary {
	if size <= 0 || size > 8000 {
		size = 8000
	}
	return &MsBinary{size: size}
}

func (t *MsBinary) DatatypeName() string { return "binary" }
func (t *MsBinary) Dialect() dialectTag  { return mssql }
func (t *MsBinary) Render() string       { return fmt.Sprintf("binary(%d)", t.size) }
func (t *MsBinary) Parameters() Params {
	return Params{DatatypeName: "binary", CharacterSize: intp(t.size)}
}
func (t *MsBinary) convertToMSSQL() Datatype { return t }
func (t *MsBinary) convertToMySQL() Datatype {
	if t.size <= 255 {
		return NewMyBinary(t.size)
	}
	return NewMyBlob(65535)
}

// ---- MsVarbinary ----

type MsVarbinary struct{ size int } // [1,8000] or -1

func NewMsVarbinary(size int) *MsVarbinary {
	if size < -1 || size > 8000 || size == 0 {
		size = -1
	}
	return &MsVarbinary{size: size}
}

func (t *MsVarbinary) DatatypeName() string { return "varbinary" }
func (t *MsVarbinary) Dialect() dialectTag  { return mssql }
func (t *MsVarbinary) Render() string {
	if t.size == -1 {
		return "varbinary(max)"
	}
	return fmt.Sprintf("varbinary(%d)", t.size)
}
func (t *MsVarbinary) Parameters() Params {
	return Params{DatatypeName: "varbinary", CharacterSize: intp(t.size)}
}
func (t *MsVarbinary) convertToMSSQL() Datatype { return t }
func (t *MsVarbinary) convertToMySQL() Datatype {
	if t.size == -1 {
		return NewMyOtherBlob("longblob")
	}
	return NewMyVarbinary(t.size)
}

// ---- MsNumeric (numeric, decimal) ----

type MsNumeric struct {
	name      string
	precision int // [1,38]
	scale     int // [0,precision]
}

func NewMsNumeric(name string, precision, scale int) *MsNumeric {
	if name != "numeric" && name != "decimal" {
		name = "numeric"
	}
	if precision <= 0 || precision > 38 {
		precision = 38
	}
	if scale < 0 || scale > precision {
		scale = precision
	}
	return &MsNumeric{name: name, precision: precision, scale: scale}
}

func (t *MsNumeric) DatatypeName() string { return t.name }
func (t *MsNumeric) Dialect() dialectTag  { return mssql }
func (t *MsNumeric) Render() string {
	return fmt.Sprintf("%s(%d, %d)", t.name, t.precision, t.scale)
}
func (t *MsNumeric) Parameters() Params {
	return Params{DatatypeName: t.name, NumericPrecision: intp(t.precision), NumericScale: intp(t.scale)}
}
func (t *MsNumeric) convertToMSSQL() Datatype { return t }
func (t *MsNumeric) convertToMySQL() Datatype {
	return NewMyDecimal(t.precision, t.scale)
}

// ---- MsFloat (float, real) ----

type MsFloat struct {
	name      string
	precision int // derived: float->53, real->24
}

func NewMsFloat(name string) *MsFloat {
	if name != "float" && name != "real" {
		name = "float"
	}
	precision := 24
	if name == "float" {
		precision = 53
	}
	return &MsFloat{name: name, precision: precision}
}

func (t *MsFloat) DatatypeName() string      { return t.name }
func (t *MsFloat) Dialect() dialectTag       { return mssql }
func (t *MsFloat) Render() string            { return t.name }
func (t *MsFloat) Parameters() Params        { return Params{DatatypeName: t.name} }
func (t *MsFloat) convertToMSSQL() Datatype  { return t }
func (t *MsFloat) convertToMySQL() Datatype {
	if t.name == "real" {
		return NewMyFloat("double")
	}
	return NewMyFloat("float")
}

// ---- MsInteger (bit, tinyint, smallint, int, bigint) ----

type MsInteger struct{ name string }

var msIntegerNames = map[string]bool{"bit": true, "tinyint": true, "smallint": true, "int": true, "bigint": true}

func NewMsInteger(name string) *MsInteger {
	if !msIntegerNames[name] {
		name = "bigint"
	}
	return &MsInteger{name: name}
}

func (t *MsInteger) DatatypeName() string      { return t.name }
func (t *MsInteger) Dialect() dialectTag       { return mssql }
func (t *MsInteger) Render() string            { return t.name }
func (t *MsInteger) Parameters() Params        { return Params{DatatypeName: t.name} }
func (t *MsInteger) convertToMSSQL() Datatype  { return t }
func (t *MsInteger) convertToMySQL() Datatype {
	switch t.name {
	case "bit":
		return NewMyInteger("tinyint", "signed")
	case "int":
		return NewMyInteger("int", "signed")
	case "tinyint", "smallint":
		return NewMyInteger("smallint", "signed")
	default:
		return NewMyInteger("bigint", "signed")
	}
}

// ---- MsMoney (money, smallmoney) ----

type MsMoney struct{ name string }

func NewMsMoney(name string) *MsMoney {
	if name != "money" && name != "smallmoney" {
		name = "money"
	}
	return &MsMoney{name: name}
}

func (t *MsMoney) DatatypeName() string     { return t.name }
func (t *MsMoney) Dialect() dialectTag      { return mssql }
func (t *MsMoney) Render() string           { return t.name }
func (t *MsMoney) Parameters() Params       { return Params{DatatypeName: t.name} }
func (t *MsMoney) convertToMSSQL() Datatype { return t }
func (t *MsMoney) convertToMySQL() Datatype {
	if t.name == "smallmoney" {
		return NewMyDecimal(10, 4)
	}
	return NewMyDecimal(19, 4)
}

// ---- MsDatetimeOne (date, datetime, smalldatetime) ----

type MsDatetimeOne struct{ name string }

var msDatetimeOneNames = map[string]bool{"date": true, "datetime": true, "smalldatetime": true}

func NewMsDatetimeOne(name string) *MsDatetimeOne {
	if !msDatetimeOneNames[name] {
		name = "date"
	}
	return &MsDatetimeOne{name: name}
}

func (t *MsDatetimeOne) DatatypeName() string     { return t.name }
func (t *MsDatetimeOne) Dialect() dialectTag      { return mssql }
func (t *MsDatetimeOne) Render() string           { return t.name }
func (t *MsDatetimeOne) Parameters() Params       { return Params{DatatypeName: t.name} }
func (t *MsDatetimeOne) convertToMSSQL() Datatype { return t }
func (t *MsDatetimeOne) convertToMySQL() Datatype {
	if t.name == "date" {
		return NewMyDate()
	}
	return NewMyDatetime("datetime", 0)
}

// ---- MsDatetimeTwo (datetime2, datetimeoffset, time) ----

type MsDatetimeTwo struct {
	name      string
	precision int // [0,7]
}

var msDatetimeTwoNames = map[string]bool{"datetime2": true, "datetimeoffset": true, "time": true}

func NewMsDatetimeTwo(name string, precision int) *MsDatetimeTwo {
	if !msDatetimeTwoNames[name] {
		name = "datetime2"
	}
	if precision < 0 || precision > 7 {
		precision = 7
	}
	return &MsDatetimeTwo{name: name, precision: precision}
}

func (t *MsDatetimeTwo) DatatypeName() string { return t.name }
func (t *MsDatetimeTwo) Dialect() dialectTag  { return mssql }
func (t *MsDatetimeTwo) Render() string       { return fmt.Sprintf("%s(%d)", t.name, t.precision) }
func (t *MsDatetimeTwo) Parameters() Params {
	return Params{DatatypeName: t.name, DatetimePrecision: intp(t.precision)}
}
func (t *MsDatetimeTwo) convertToMSSQL() Datatype { return t }
func (t *MsDatetimeTwo) convertToMySQL() Datatype {
	// datetime2/datetimeoffset -> datetime loses any timezone offset.
	if t.name == "time" {
		return NewMyDatetime("time", t.precision)
	}
	return NewMyDatetime("datetime", t.precision)
}

// ---- MsTimestamp (rowversion; no parameters) ----

type MsTimestamp struct{}

func NewMsTimestamp() *MsTimestamp { return &MsTimestamp{} }

func (t *MsTimestamp) DatatypeName() string     { return "timestamp" }
func (t *MsTimestamp) Dialect() dialectTag      { return mssql }
func (t *MsTimestamp) Render() string           { return "timestamp" }
func (t *MsTimestamp) Parameters() Params       { return Params{DatatypeName: "timestamp"} }
func (t *MsTimestamp) convertToMSSQL() Datatype { return t }
func (t *MsTimestamp) convertToMySQL() Datatype { return NewMyInteger("bigint", "signed") }

// ---- MsOther (geography, geometry, hierarchyid, image, sql_variant, sysname, uniqueidentifier, xml) ----

type MsOther struct{ name string }

// NewMsOther constructs an MsOther value. name must be one of the
// fixed catch-all MSSQL type names; any other value is a programming
// error in the caller (the factory only reaches this constructor with
// an already-validated canonical name), not a runtime clamp case.
func NewMsOther(name string) *MsOther { return &MsOther{name: name} }

func (t *MsOther) DatatypeName() string     { return t.name }
func (t *MsOther) Dialect() dialectTag      { return mssql }
func (t *MsOther) Render() string           { return t.name }
func (t *MsOther) Parameters() Params       { return Params{DatatypeName: t.name} }
func (t *MsOther) convertToMSSQL() Datatype { return t }
func (t *MsOther) convertToMySQL() Datatype {
	switch t.name {
	case "geography", "geometry", "hierarchyid", "image":
		return NewMyBlob(65535)
	case "sql_variant", "xml":
		return NewMyText(65535, "latin1")
	case "sysname":
		return NewMyVarchar(128, "utf8mb4")
	case "uniqueidentifier":
		return NewMyBinary(16)
	default:
		return NewMyText(65535, "latin1")
	}
}
