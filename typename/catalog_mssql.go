package typename

var mssqlDatatypes = []Entry{
	{"varchar", []string{"character varying", "char varying", "varchar"}, CharacterString},
	{"nvarchar", []string{"nvarchar", "national character varying", "national char varying"}, CharacterString},
	{"text", []string{"text"}, CharacterString},
	{"ntext", []string{"national text", "ntext"}, CharacterString},
	{"char", []string{"character", "char"}, CharacterString},
	{"nchar", []string{"national character", "national char", "nchar"}, CharacterString},
	{"numeric", []string{"numeric"}, Numeric},
	{"decimal", []string{"dec", "decimal"}, Numeric},
	{"float", []string{"float", "double precision"}, Numeric},
	{"real", []string{"real"}, Numeric},
	{"bit", []string{"bit"}, Numeric},
	{"tinyint", []string{"tinyint"}, Numeric},
	{"smallint", []string{"smallint"}, Numeric},
	{"int", []string{"int", "integer"}, Numeric},
	{"bigint", []string{"bigint"}, Numeric},
	{"smallmoney", []string{"smallmoney"}, Numeric},
	{"money", []string{"money"}, Numeric},
	{"varbinary", []string{"varbinary", "binary varying"}, Binary},
	{"binary", []string{"binary"}, Binary},
	{"geography", []string{"geography"}, Other},
	{"geometry", []string{"geometry"}, Other},
	{"hierarchyid", []string{"hierarchyid"}, Other},
	{"image", []string{"image"}, Other},
	{"sql_variant", []string{"sql_variant"}, Other},
	{"sysname", []string{"sysname"}, Other},
	{"uniqueidentifier", []string{"uniqueidentifier"}, Other},
	{"xml", []string{"xml"}, Other},
	{"timestamp", []string{"timestamp", "rowversion"}, Datetime},
	{"date", []string{"date"}, Datetime},
	{"datetime", []string{"datetime"}, Datetime},
	{"datetime2", []string{"datetime2"}, Datetime},
	{"datetimeoffset", []string{"datetimeoffset"}, Datetime},
	{"smalldatetime", []string{"smalldatetime"}, Datetime},
	{"time", []string{"time"}, Datetime},
}
