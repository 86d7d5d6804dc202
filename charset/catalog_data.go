package charset

// mssqlCharacterSets is empty: MSSQL does not express character set
// at the type level.
var mssqlCharacterSets = map[string]Entry{}

// mysqlCharacterSets is MySQL's character-set catalog. Categories are
// preserved exactly as the source system ships them, including the
// utf8-is-"unicode"-but-utf16/utf16le/utf32-are-"character" quirk —
// do not "correct" it.
var mysqlCharacterSets = buildMySQLCharacterSets()

func buildMySQLCharacterSets() map[string]Entry {
	raw := []Entry{
		{Name: "armscii8", Description: "ARMSCII-8 Armenian", MaxBytes: 1, Category: Character},
		{Name: "ascii", Description: "US ASCII", MaxBytes: 1, Category: Character},
		{Name: "big5", Description: "Big5 Traditional Chinese", MaxBytes: 2, Category: Unicode},
		{Name: "binary", Description: "Binary pseudo charset", MaxBytes: 1, Category: Character},
		{Name: "cp1250", Description: "Windows Central European", MaxBytes: 1, Category: Character},
		{Name: "cp1251", Description: "Windows Cyrillic", MaxBytes: 1, Category: Character},
		{Name: "cp1256", Description: "Windows Arabic", MaxBytes: 1, Category: Character},
		{Name: "cp1257", Description: "Windows Baltic", MaxBytes: 1, Category: Character},
		{Name: "cp850", Description: "DOS West European", MaxBytes: 1, Category: Character},
		{Name: "cp852", Description: "DOS Central European", MaxBytes: 1, Category: Character},
		{Name: "cp866", Description: "DOS Russian", MaxBytes: 1, Category: Character},
		{Name: "cp932", Description: "SJIS for Windows Japanese", MaxBytes: 2, Category: Unicode},
		{Name: "dec8", Description: "DEC West European", MaxBytes: 1, Category: Character},
		{Name: "eucjpms", Description: "UJIS for Windows Japanese", MaxBytes: 3, Category: Unicode},
		{Name: "euckr", Description: "EUC-KR Korean", MaxBytes: 2, Category: Unicode},
		{Name: "gb18030", Description: "China National Standard GB18030", MaxBytes: 4, Category: Character},
		{Name: "gb2312", Description: "GB2312 Simplified Chinese", MaxBytes: 2, Category: Unicode},
		{Name: "gbk", Description: "GBK Simplified Chinese", MaxBytes: 2, Category: Unicode},
		{Name: "geostd8", Description: "GEOSTD8 Georgian", MaxBytes: 1, Category: Character},
		{Name: "greek", Description: "ISO 8859-7 Greek", MaxBytes: 1, Category: Character},
		{Name: "hebrew", Description: "ISO 8859-8 Hebrew", MaxBytes: 1, Category: Character},
		{Name: "hp8", Description: "HP West European", MaxBytes: 1, Category: Character},
		{Name: "keybcs2", Description: "DOS Kamenicky Czech-Slovak", MaxBytes: 1, Category: Character},
		{Name: "koi8r", Description: "KOI8-R Relcom Russian", MaxBytes: 1, Category: Character},
		{Name: "koi8u", Description: "KOI8-U Ukrainian", MaxBytes: 1, Category: Character},
		{Name: "latin1", Description: "cp1252 West European", MaxBytes: 1, Category: Character},
		{Name: "latin2", Description: "ISO 8859-2 Central European", MaxBytes: 1, Category: Character},
		{Name: "latin5", Description: "ISO 8859-9 Turkish", MaxBytes: 1, Category: Character},
		{Name: "latin7", Description: "ISO 8859-13 Baltic", MaxBytes: 1, Category: Character},
		{Name: "macce", Description: "Mac Central European", MaxBytes: 1, Category: Character},
		{Name: "macroman", Description: "Mac West European", MaxBytes: 1, Category: Character},
		{Name: "sjis", Description: "Shift-JIS Japanese", MaxBytes: 2, Category: Unicode},
		{Name: "swe7", Description: "7bit Swedish", MaxBytes: 1, Category: Character},
		{Name: "tis620", Description: "TIS620 Thai", MaxBytes: 1, Category: Character},
		{Name: "ucs2", Description: "UCS-2 Unicode", MaxBytes: 2, Category: Unicode},
		{Name: "ujis", Description: "EUC-JP Japanese", MaxBytes: 3, Category: Unicode},
		{Name: "utf16", Description: "UTF-16 Unicode", MaxBytes: 4, Category: Character},
		{Name: "utf16le", Description: "UTF-16LE Unicode", MaxBytes: 4, Category: Character},
		{Name: "utf32", Description: "UTF-32 Unicode", MaxBytes: 4, Category: Character},
		{Name: "utf8", Description: "UTF-8 Unicode", MaxBytes: 3, Category: Unicode},
		{Name: "utf8mb4", Description: "UTF-8 Unicode", MaxBytes: 4, Category: Unicode},
	}

	m := make(map[string]Entry, len(raw))
	for _, e := range raw {
		m[e.Name] = e
	}
	return m
}
