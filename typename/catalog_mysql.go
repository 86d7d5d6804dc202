package typename

var mysqlDatatypes = []Entry{
	{"varchar", []string{"character varying", "char varying", "varchar"}, CharacterString},
	{"nvarchar", []string{"nvarchar", "national character varying", "national char varying"}, CharacterString},
	{"text", []string{"text"}, CharacterString},
	{"tinytext", []string{"tinytext"}, CharacterString},
	{"mediumtext", []string{"mediumtext", "long", "long varchar"}, CharacterString},
	{"longtext", []string{"longtext"}, CharacterString},
	{"char", []string{"character", "char"}, CharacterString},
	{"nchar", []string{"national character", "national char", "nchar"}, CharacterString},
	{"set", []string{"set"}, CharacterString},
	{"enum", []string{"enum"}, CharacterString},
	{"decimal", []string{"numeric", "dec", "decimal", "fixed"}, Numeric},
	{"float", []string{"float", "float4"}, Numeric},
	{"double", []string{"float8", "double", "double precision", "real"}, Numeric},
	{"bit", []string{"bit"}, Numeric},
	{"tinyint", []string{"int1", "tinyint", "bool", "boolean"}, Numeric},
	{"smallint", []string{"int2", "smallint"}, Numeric},
	{"mediumint", []string{"int3", "mediumint", "middleint"}, Numeric},
	{"int", []string{"int4", "integer", "int"}, Numeric},
	{"bigint", []string{"int8", "bigint"}, Numeric},
	{"serial", []string{"serial"}, Numeric},
	{"varbinary", []string{"varbinary"}, Binary},
	{"binary", []string{"binary"}, Binary},
	{"blob", []string{"blob"}, Binary},
	{"tinyblob", []string{"tinyblob"}, Binary},
	{"mediumblob", []string{"mediumblob", "long varbinary"}, Binary},
	{"longblob", []string{"longblob"}, Binary},
	{"date", []string{"date"}, Datetime},
	{"datetime", []string{"datetime"}, Datetime},
	{"time", []string{"time"}, Datetime},
	{"timestamp", []string{"timestamp"}, Datetime},
	{"year", []string{"year"}, Datetime},
}
