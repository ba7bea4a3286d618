// Package token defines constants representing the lexical tokens of the
// Pipe Processing Language (PPL).
package token

// Token represents a lexical token.
type Token int

const (
	// Special tokens
	ILLEGAL Token = iota
	EOF
	ERROR_RECOGNITION // unrecognized character, kept so the parser can report it

	// Literals
	ID              // identifiers
	CLUSTER         // remote cluster prefix like "remote:"
	INTEGER_LITERAL // 123
	DECIMAL_LITERAL // 1.5, .5
	ID_DATE_SUFFIX  // index patterns like logs-2021.01.11 or logs-*
	DQUOTA_STRING   // "..."
	SQUOTA_STRING   // '...'
	BQUOTA_STRING   // `...`

	// Operators and punctuation
	PIPE               // |
	COMMA              // ,
	DOT                // .
	EQUAL              // =
	GREATER            // >
	LESS               // <
	NOT_GREATER        // <=
	NOT_LESS           // >=
	NOT_EQUAL          // != or <>
	PLUS               // +
	MINUS              // -
	STAR               // *
	DIVIDE             // /
	MODULE             // %
	EXCLAMATION_SYMBOL // !
	COLON              // :
	LT_PRTHS           // (
	RT_PRTHS           // )
	LT_SQR_PRTHS       // [
	RT_SQR_PRTHS       // ]
	LT_CURLY           // {
	RT_CURLY           // }
	SINGLE_QUOTE       // ' without a closing quote
	DOUBLE_QUOTE       // " without a closing quote
	BACKTICK           // ` without a closing quote
	BIT_NOT_OP         // ~
	BIT_AND_OP         // &
	BIT_XOR_OP         // ^

	// Keywords
	keyword_beg

	// Commands
	SEARCH
	DESCRIBE
	SHOW
	FROM
	WHERE
	FIELDS
	RENAME
	STATS
	DEDUP
	SORT
	EVAL
	HEAD
	TOP
	RARE
	PARSE
	METHOD
	REGEX
	PUNCT
	GROK
	PATTERN
	PATTERNS
	NEW_FIELD
	KMEANS
	AD
	ML

	// Command assist keywords
	AS
	BY
	SOURCE
	INDEX
	D
	DESC
	DATASOURCES
	SORTBY

	// Sort field casts
	AUTO
	STR
	IP
	NUM

	// Command arguments
	KEEPEMPTY
	CONSECUTIVE
	DEDUP_SPLITVALUES
	PARTITIONS
	ALLNUM
	DELIM
	CENTROIDS
	ITERATIONS
	DISTANCE_TYPE
	NUMBER_OF_TREES
	SHINGLE_SIZE
	SAMPLE_SIZE
	OUTPUT_AFTER
	TIME_DECAY
	ANOMALY_RATE
	CATEGORY_FIELD
	TIME_FIELD
	TIME_ZONE
	TRAINING_DATA_SIZE
	ANOMALY_SCORE_THRESHOLD

	// Comparison and logical keywords
	CASE
	ELSE
	IN
	NOT
	OR
	AND
	XOR
	TRUE
	FALSE
	REGEXP

	// Datetime, interval and unit keywords
	CONVERT_TZ
	DATETIME
	DAY
	DAY_HOUR
	DAY_MICROSECOND
	DAY_MINUTE
	DAY_OF_YEAR
	DAY_SECOND
	HOUR
	HOUR_MICROSECOND
	HOUR_MINUTE
	HOUR_OF_DAY
	HOUR_SECOND
	INTERVAL
	MICROSECOND
	MILLISECOND
	MINUTE
	MINUTE_MICROSECOND
	MINUTE_OF_DAY
	MINUTE_OF_HOUR
	MINUTE_SECOND
	MONTH
	MONTH_OF_YEAR
	QUARTER
	SECOND
	SECOND_MICROSECOND
	SECOND_OF_MINUTE
	WEEK
	WEEK_OF_YEAR
	YEAR
	YEAR_MONTH

	// Dataset types
	DATAMODEL
	LOOKUP
	SAVEDSEARCH

	// Converted data types
	INT
	INTEGER
	DOUBLE
	LONG
	FLOAT
	STRING
	BOOLEAN

	// Aggregation functions
	AVG
	COUNT
	DISTINCT_COUNT
	ESTDC
	ESTDC_ERROR
	MAX
	MEAN
	MEDIAN
	MIN
	MODE
	RANGE
	STDEV
	STDEVP
	SUM
	SUMSQ
	VAR_SAMP
	VAR_POP
	STDDEV_SAMP
	STDDEV_POP
	PERCENTILE
	TAKE
	FIRST
	LAST
	LIST
	VALUES
	EARLIEST
	EARLIEST_TIME
	LATEST
	LATEST_TIME
	PER_DAY
	PER_HOUR
	PER_MINUTE
	PER_SECOND
	RATE
	SPARKLINE
	C
	DC

	// Mathematical functions
	ABS
	CBRT
	CEIL
	CEILING
	CONV
	CRC32
	E
	EXP
	FLOOR
	LN
	LOG
	LOG10
	LOG2
	MOD
	PI
	POSITION
	POW
	POWER
	RAND
	ROUND
	SIGN
	SQRT
	TRUNCATE

	// Trigonometric functions
	ACOS
	ASIN
	ATAN
	ATAN2
	COS
	COT
	DEGREES
	RADIANS
	SIN
	TAN

	// Date and time functions
	ADDDATE
	ADDTIME
	CURDATE
	CURRENT_DATE
	CURRENT_TIME
	CURRENT_TIMESTAMP
	CURTIME
	DATE
	DATEDIFF
	DATE_ADD
	DATE_FORMAT
	DATE_SUB
	DAYNAME
	DAYOFMONTH
	DAYOFWEEK
	DAYOFYEAR
	DAY_OF_MONTH
	DAY_OF_WEEK
	EXTRACT
	FROM_DAYS
	FROM_UNIXTIME
	GET_FORMAT
	LAST_DAY
	LOCALTIME
	LOCALTIMESTAMP
	MAKEDATE
	MAKETIME
	MONTHNAME
	NOW
	PERIOD_ADD
	PERIOD_DIFF
	SEC_TO_TIME
	STR_TO_DATE
	SUBDATE
	SUBTIME
	SYSDATE
	TIME
	TIMEDIFF
	TIMESTAMP
	TIMESTAMPADD
	TIMESTAMPDIFF
	TIME_FORMAT
	TIME_TO_SEC
	TO_DAYS
	TO_SECONDS
	UNIX_TIMESTAMP
	UTC_DATE
	UTC_TIME
	UTC_TIMESTAMP
	WEEKDAY
	YEARWEEK

	// Text functions
	SUBSTR
	SUBSTRING
	LTRIM
	RTRIM
	TRIM
	TO
	LOWER
	UPPER
	CONCAT
	CONCAT_WS
	LENGTH
	STRCMP
	RIGHT
	LEFT
	ASCII
	LOCATE
	REPLACE
	REVERSE
	CAST

	// Condition and system functions
	LIKE
	ISNULL
	ISNOTNULL
	IFNULL
	NULLIF
	IF
	TYPEOF

	// Relevance functions
	MATCH
	MATCH_PHRASE
	MATCH_PHRASE_PREFIX
	MATCH_BOOL_PREFIX
	SIMPLE_QUERY_STRING
	MULTI_MATCH
	QUERY_STRING

	// Relevance function arguments
	ALLOW_LEADING_WILDCARD
	ANALYZE_WILDCARD
	ANALYZER
	AUTO_GENERATE_SYNONYMS_PHRASE_QUERY
	BOOST
	CUTOFF_FREQUENCY
	DEFAULT_FIELD
	DEFAULT_OPERATOR
	ENABLE_POSITION_INCREMENTS
	ESCAPE
	FLAGS
	FUZZY_MAX_EXPANSIONS
	FUZZY_PREFIX_LENGTH
	FUZZY_TRANSPOSITIONS
	FUZZY_REWRITE
	FUZZINESS
	LENIENT
	LOW_FREQ_OPERATOR
	MAX_DETERMINIZED_STATES
	MAX_EXPANSIONS
	MINIMUM_SHOULD_MATCH
	OPERATOR
	PHRASE_SLOP
	PREFIX_LENGTH
	QUOTE_ANALYZER
	QUOTE_FIELD_SUFFIX
	REWRITE
	SLOP
	TIE_BREAKER
	TYPE
	ZERO_TERMS_QUERY

	// Span and timespan units
	SPAN
	MS
	S
	M
	H
	W
	Q
	Y
	keyword_end
)

var tokens = [...]string{
	ILLEGAL:           "ILLEGAL",
	EOF:               "EOF",
	ERROR_RECOGNITION: "ERROR_RECOGNITION",

	ID:              "ID",
	CLUSTER:         "CLUSTER",
	INTEGER_LITERAL: "INTEGER_LITERAL",
	DECIMAL_LITERAL: "DECIMAL_LITERAL",
	ID_DATE_SUFFIX:  "ID_DATE_SUFFIX",
	DQUOTA_STRING:   "DQUOTA_STRING",
	SQUOTA_STRING:   "SQUOTA_STRING",
	BQUOTA_STRING:   "BQUOTA_STRING",

	PIPE:               "|",
	COMMA:              ",",
	DOT:                ".",
	EQUAL:              "=",
	GREATER:            ">",
	LESS:               "<",
	NOT_GREATER:        "<=",
	NOT_LESS:           ">=",
	NOT_EQUAL:          "!=",
	PLUS:               "+",
	MINUS:              "-",
	STAR:               "*",
	DIVIDE:             "/",
	MODULE:             "%",
	EXCLAMATION_SYMBOL: "!",
	COLON:              ":",
	LT_PRTHS:           "(",
	RT_PRTHS:           ")",
	LT_SQR_PRTHS:       "[",
	RT_SQR_PRTHS:       "]",
	LT_CURLY:           "{",
	RT_CURLY:           "}",
	SINGLE_QUOTE:       "'",
	DOUBLE_QUOTE:       "\"",
	BACKTICK:           "`",
	BIT_NOT_OP:         "~",
	BIT_AND_OP:         "&",
	BIT_XOR_OP:         "^",

	SEARCH:      "SEARCH",
	DESCRIBE:    "DESCRIBE",
	SHOW:        "SHOW",
	FROM:        "FROM",
	WHERE:       "WHERE",
	FIELDS:      "FIELDS",
	RENAME:      "RENAME",
	STATS:       "STATS",
	DEDUP:       "DEDUP",
	SORT:        "SORT",
	EVAL:        "EVAL",
	HEAD:        "HEAD",
	TOP:         "TOP",
	RARE:        "RARE",
	PARSE:       "PARSE",
	METHOD:      "METHOD",
	REGEX:       "REGEX",
	PUNCT:       "PUNCT",
	GROK:        "GROK",
	PATTERN:     "PATTERN",
	PATTERNS:    "PATTERNS",
	NEW_FIELD:   "NEW_FIELD",
	KMEANS:      "KMEANS",
	AD:          "AD",
	ML:          "ML",
	AS:          "AS",
	BY:          "BY",
	SOURCE:      "SOURCE",
	INDEX:       "INDEX",
	D:           "D",
	DESC:        "DESC",
	DATASOURCES: "DATASOURCES",
	SORTBY:      "SORTBY",
	AUTO:        "AUTO",
	STR:         "STR",
	IP:          "IP",
	NUM:         "NUM",

	KEEPEMPTY:               "KEEPEMPTY",
	CONSECUTIVE:             "CONSECUTIVE",
	DEDUP_SPLITVALUES:       "DEDUP_SPLITVALUES",
	PARTITIONS:              "PARTITIONS",
	ALLNUM:                  "ALLNUM",
	DELIM:                   "DELIM",
	CENTROIDS:               "CENTROIDS",
	ITERATIONS:              "ITERATIONS",
	DISTANCE_TYPE:           "DISTANCE_TYPE",
	NUMBER_OF_TREES:         "NUMBER_OF_TREES",
	SHINGLE_SIZE:            "SHINGLE_SIZE",
	SAMPLE_SIZE:             "SAMPLE_SIZE",
	OUTPUT_AFTER:            "OUTPUT_AFTER",
	TIME_DECAY:              "TIME_DECAY",
	ANOMALY_RATE:            "ANOMALY_RATE",
	CATEGORY_FIELD:          "CATEGORY_FIELD",
	TIME_FIELD:              "TIME_FIELD",
	TIME_ZONE:               "TIME_ZONE",
	TRAINING_DATA_SIZE:      "TRAINING_DATA_SIZE",
	ANOMALY_SCORE_THRESHOLD: "ANOMALY_SCORE_THRESHOLD",

	CASE:   "CASE",
	ELSE:   "ELSE",
	IN:     "IN",
	NOT:    "NOT",
	OR:     "OR",
	AND:    "AND",
	XOR:    "XOR",
	TRUE:   "TRUE",
	FALSE:  "FALSE",
	REGEXP: "REGEXP",

	CONVERT_TZ:         "CONVERT_TZ",
	DATETIME:           "DATETIME",
	DAY:                "DAY",
	DAY_HOUR:           "DAY_HOUR",
	DAY_MICROSECOND:    "DAY_MICROSECOND",
	DAY_MINUTE:         "DAY_MINUTE",
	DAY_OF_YEAR:        "DAY_OF_YEAR",
	DAY_SECOND:         "DAY_SECOND",
	HOUR:               "HOUR",
	HOUR_MICROSECOND:   "HOUR_MICROSECOND",
	HOUR_MINUTE:        "HOUR_MINUTE",
	HOUR_OF_DAY:        "HOUR_OF_DAY",
	HOUR_SECOND:        "HOUR_SECOND",
	INTERVAL:           "INTERVAL",
	MICROSECOND:        "MICROSECOND",
	MILLISECOND:        "MILLISECOND",
	MINUTE:             "MINUTE",
	MINUTE_MICROSECOND: "MINUTE_MICROSECOND",
	MINUTE_OF_DAY:      "MINUTE_OF_DAY",
	MINUTE_OF_HOUR:     "MINUTE_OF_HOUR",
	MINUTE_SECOND:      "MINUTE_SECOND",
	MONTH:              "MONTH",
	MONTH_OF_YEAR:      "MONTH_OF_YEAR",
	QUARTER:            "QUARTER",
	SECOND:             "SECOND",
	SECOND_MICROSECOND: "SECOND_MICROSECOND",
	SECOND_OF_MINUTE:   "SECOND_OF_MINUTE",
	WEEK:               "WEEK",
	WEEK_OF_YEAR:       "WEEK_OF_YEAR",
	YEAR:               "YEAR",
	YEAR_MONTH:         "YEAR_MONTH",

	DATAMODEL:   "DATAMODEL",
	LOOKUP:      "LOOKUP",
	SAVEDSEARCH: "SAVEDSEARCH",

	INT:     "INT",
	INTEGER: "INTEGER",
	DOUBLE:  "DOUBLE",
	LONG:    "LONG",
	FLOAT:   "FLOAT",
	STRING:  "STRING",
	BOOLEAN: "BOOLEAN",

	AVG:            "AVG",
	COUNT:          "COUNT",
	DISTINCT_COUNT: "DISTINCT_COUNT",
	ESTDC:          "ESTDC",
	ESTDC_ERROR:    "ESTDC_ERROR",
	MAX:            "MAX",
	MEAN:           "MEAN",
	MEDIAN:         "MEDIAN",
	MIN:            "MIN",
	MODE:           "MODE",
	RANGE:          "RANGE",
	STDEV:          "STDEV",
	STDEVP:         "STDEVP",
	SUM:            "SUM",
	SUMSQ:          "SUMSQ",
	VAR_SAMP:       "VAR_SAMP",
	VAR_POP:        "VAR_POP",
	STDDEV_SAMP:    "STDDEV_SAMP",
	STDDEV_POP:     "STDDEV_POP",
	PERCENTILE:     "PERCENTILE",
	TAKE:           "TAKE",
	FIRST:          "FIRST",
	LAST:           "LAST",
	LIST:           "LIST",
	VALUES:         "VALUES",
	EARLIEST:       "EARLIEST",
	EARLIEST_TIME:  "EARLIEST_TIME",
	LATEST:         "LATEST",
	LATEST_TIME:    "LATEST_TIME",
	PER_DAY:        "PER_DAY",
	PER_HOUR:       "PER_HOUR",
	PER_MINUTE:     "PER_MINUTE",
	PER_SECOND:     "PER_SECOND",
	RATE:           "RATE",
	SPARKLINE:      "SPARKLINE",
	C:              "C",
	DC:             "DC",

	ABS:      "ABS",
	CBRT:     "CBRT",
	CEIL:     "CEIL",
	CEILING:  "CEILING",
	CONV:     "CONV",
	CRC32:    "CRC32",
	E:        "E",
	EXP:      "EXP",
	FLOOR:    "FLOOR",
	LN:       "LN",
	LOG:      "LOG",
	LOG10:    "LOG10",
	LOG2:     "LOG2",
	MOD:      "MOD",
	PI:       "PI",
	POSITION: "POSITION",
	POW:      "POW",
	POWER:    "POWER",
	RAND:     "RAND",
	ROUND:    "ROUND",
	SIGN:     "SIGN",
	SQRT:     "SQRT",
	TRUNCATE: "TRUNCATE",

	ACOS:    "ACOS",
	ASIN:    "ASIN",
	ATAN:    "ATAN",
	ATAN2:   "ATAN2",
	COS:     "COS",
	COT:     "COT",
	DEGREES: "DEGREES",
	RADIANS: "RADIANS",
	SIN:     "SIN",
	TAN:     "TAN",

	ADDDATE:           "ADDDATE",
	ADDTIME:           "ADDTIME",
	CURDATE:           "CURDATE",
	CURRENT_DATE:      "CURRENT_DATE",
	CURRENT_TIME:      "CURRENT_TIME",
	CURRENT_TIMESTAMP: "CURRENT_TIMESTAMP",
	CURTIME:           "CURTIME",
	DATE:              "DATE",
	DATEDIFF:          "DATEDIFF",
	DATE_ADD:          "DATE_ADD",
	DATE_FORMAT:       "DATE_FORMAT",
	DATE_SUB:          "DATE_SUB",
	DAYNAME:           "DAYNAME",
	DAYOFMONTH:        "DAYOFMONTH",
	DAYOFWEEK:         "DAYOFWEEK",
	DAYOFYEAR:         "DAYOFYEAR",
	DAY_OF_MONTH:      "DAY_OF_MONTH",
	DAY_OF_WEEK:       "DAY_OF_WEEK",
	EXTRACT:           "EXTRACT",
	FROM_DAYS:         "FROM_DAYS",
	FROM_UNIXTIME:     "FROM_UNIXTIME",
	GET_FORMAT:        "GET_FORMAT",
	LAST_DAY:          "LAST_DAY",
	LOCALTIME:         "LOCALTIME",
	LOCALTIMESTAMP:    "LOCALTIMESTAMP",
	MAKEDATE:          "MAKEDATE",
	MAKETIME:          "MAKETIME",
	MONTHNAME:         "MONTHNAME",
	NOW:               "NOW",
	PERIOD_ADD:        "PERIOD_ADD",
	PERIOD_DIFF:       "PERIOD_DIFF",
	SEC_TO_TIME:       "SEC_TO_TIME",
	STR_TO_DATE:       "STR_TO_DATE",
	SUBDATE:           "SUBDATE",
	SUBTIME:           "SUBTIME",
	SYSDATE:           "SYSDATE",
	TIME:              "TIME",
	TIMEDIFF:          "TIMEDIFF",
	TIMESTAMP:         "TIMESTAMP",
	TIMESTAMPADD:      "TIMESTAMPADD",
	TIMESTAMPDIFF:     "TIMESTAMPDIFF",
	TIME_FORMAT:       "TIME_FORMAT",
	TIME_TO_SEC:       "TIME_TO_SEC",
	TO_DAYS:           "TO_DAYS",
	TO_SECONDS:        "TO_SECONDS",
	UNIX_TIMESTAMP:    "UNIX_TIMESTAMP",
	UTC_DATE:          "UTC_DATE",
	UTC_TIME:          "UTC_TIME",
	UTC_TIMESTAMP:     "UTC_TIMESTAMP",
	WEEKDAY:           "WEEKDAY",
	YEARWEEK:          "YEARWEEK",

	SUBSTR:    "SUBSTR",
	SUBSTRING: "SUBSTRING",
	LTRIM:     "LTRIM",
	RTRIM:     "RTRIM",
	TRIM:      "TRIM",
	TO:        "TO",
	LOWER:     "LOWER",
	UPPER:     "UPPER",
	CONCAT:    "CONCAT",
	CONCAT_WS: "CONCAT_WS",
	LENGTH:    "LENGTH",
	STRCMP:    "STRCMP",
	RIGHT:     "RIGHT",
	LEFT:      "LEFT",
	ASCII:     "ASCII",
	LOCATE:    "LOCATE",
	REPLACE:   "REPLACE",
	REVERSE:   "REVERSE",
	CAST:      "CAST",

	LIKE:      "LIKE",
	ISNULL:    "ISNULL",
	ISNOTNULL: "ISNOTNULL",
	IFNULL:    "IFNULL",
	NULLIF:    "NULLIF",
	IF:        "IF",
	TYPEOF:    "TYPEOF",

	MATCH:               "MATCH",
	MATCH_PHRASE:        "MATCH_PHRASE",
	MATCH_PHRASE_PREFIX: "MATCH_PHRASE_PREFIX",
	MATCH_BOOL_PREFIX:   "MATCH_BOOL_PREFIX",
	SIMPLE_QUERY_STRING: "SIMPLE_QUERY_STRING",
	MULTI_MATCH:         "MULTI_MATCH",
	QUERY_STRING:        "QUERY_STRING",

	ALLOW_LEADING_WILDCARD:              "ALLOW_LEADING_WILDCARD",
	ANALYZE_WILDCARD:                    "ANALYZE_WILDCARD",
	ANALYZER:                            "ANALYZER",
	AUTO_GENERATE_SYNONYMS_PHRASE_QUERY: "AUTO_GENERATE_SYNONYMS_PHRASE_QUERY",
	BOOST:                               "BOOST",
	CUTOFF_FREQUENCY:                    "CUTOFF_FREQUENCY",
	DEFAULT_FIELD:                       "DEFAULT_FIELD",
	DEFAULT_OPERATOR:                    "DEFAULT_OPERATOR",
	ENABLE_POSITION_INCREMENTS:          "ENABLE_POSITION_INCREMENTS",
	ESCAPE:                              "ESCAPE",
	FLAGS:                               "FLAGS",
	FUZZY_MAX_EXPANSIONS:                "FUZZY_MAX_EXPANSIONS",
	FUZZY_PREFIX_LENGTH:                 "FUZZY_PREFIX_LENGTH",
	FUZZY_TRANSPOSITIONS:                "FUZZY_TRANSPOSITIONS",
	FUZZY_REWRITE:                       "FUZZY_REWRITE",
	FUZZINESS:                           "FUZZINESS",
	LENIENT:                             "LENIENT",
	LOW_FREQ_OPERATOR:                   "LOW_FREQ_OPERATOR",
	MAX_DETERMINIZED_STATES:             "MAX_DETERMINIZED_STATES",
	MAX_EXPANSIONS:                      "MAX_EXPANSIONS",
	MINIMUM_SHOULD_MATCH:                "MINIMUM_SHOULD_MATCH",
	OPERATOR:                            "OPERATOR",
	PHRASE_SLOP:                         "PHRASE_SLOP",
	PREFIX_LENGTH:                       "PREFIX_LENGTH",
	QUOTE_ANALYZER:                      "QUOTE_ANALYZER",
	QUOTE_FIELD_SUFFIX:                  "QUOTE_FIELD_SUFFIX",
	REWRITE:                             "REWRITE",
	SLOP:                                "SLOP",
	TIE_BREAKER:                         "TIE_BREAKER",
	TYPE:                                "TYPE",
	ZERO_TERMS_QUERY:                    "ZERO_TERMS_QUERY",

	SPAN: "SPAN",
	MS:   "MS",
	S:    "S",
	M:    "M",
	H:    "H",
	W:    "W",
	Q:    "Q",
	Y:    "Y",
}

func (tok Token) String() string {
	if tok >= 0 && int(tok) < len(tokens) {
		return tokens[tok]
	}
	return ""
}

// Keywords maps upper-case keyword spellings to their token types.
var Keywords map[string]Token

func init() {
	Keywords = make(map[string]Token)
	for i := keyword_beg + 1; i < keyword_end; i++ {
		Keywords[tokens[i]] = i
	}
	initCategories()
}

// Lookup returns the token type for an upper-cased identifier string.
// If the string is a keyword, it returns the keyword token.
// Otherwise, it returns ID.
func Lookup(ident string) Token {
	if tok, ok := Keywords[ident]; ok {
		return tok
	}
	return ID
}

// IsKeyword returns true if the token is a keyword.
func (tok Token) IsKeyword() bool {
	return tok > keyword_beg && tok < keyword_end
}

// IsString reports whether tok is a double or single quoted string literal.
func (tok Token) IsString() bool {
	return tok == DQUOTA_STRING || tok == SQUOTA_STRING
}

// Position represents a source position.
type Position struct {
	Offset int // byte offset
	Line   int // line number (1-based)
	Column int // column number (1-based)
}
