package token

// Category classifies keywords by the grammar positions they may occupy.
// A keyword can belong to several categories.
type Category uint32

const (
	Command Category = 1 << iota
	CommandArg
	StatsFunction
	Math
	Trigonometric
	DateTime
	Text
	Condition
	System
	PositionFunction
	RelevanceSingle
	RelevanceMulti
	RelevanceArg
	IntervalUnit
	TimespanUnit
	DataType
	CanBeID
)

// EvalFunction covers every keyword usable as the name of an eval function call.
const EvalFunction = Math | Trigonometric | DateTime | Text | Condition | System | PositionFunction

// Relevance covers both single and multi field relevance functions.
const Relevance = RelevanceSingle | RelevanceMulti

var categories [keyword_end]Category

func mark(cat Category, toks ...Token) {
	for _, t := range toks {
		categories[t] |= cat
	}
}

func initCategories() {
	mark(Command,
		SEARCH, DESCRIBE, SHOW, FROM, WHERE, FIELDS, RENAME, STATS, DEDUP, SORT,
		EVAL, HEAD, TOP, RARE, PARSE, METHOD, REGEX, PUNCT, GROK, PATTERN,
		PATTERNS, NEW_FIELD, KMEANS, AD, ML)
	mark(CommandArg,
		KEEPEMPTY, CONSECUTIVE, DEDUP_SPLITVALUES, PARTITIONS, ALLNUM, DELIM,
		CENTROIDS, ITERATIONS, DISTANCE_TYPE, NUMBER_OF_TREES, SHINGLE_SIZE,
		SAMPLE_SIZE, OUTPUT_AFTER, TIME_DECAY, ANOMALY_RATE, CATEGORY_FIELD,
		TIME_FIELD, TIME_ZONE, TRAINING_DATA_SIZE, ANOMALY_SCORE_THRESHOLD)
	mark(StatsFunction,
		AVG, COUNT, DISTINCT_COUNT, ESTDC, ESTDC_ERROR, MAX, MEAN, MEDIAN, MIN,
		MODE, RANGE, STDEV, STDEVP, SUM, SUMSQ, VAR_SAMP, VAR_POP, STDDEV_SAMP,
		STDDEV_POP, PERCENTILE, TAKE, FIRST, LAST, LIST, VALUES, EARLIEST,
		EARLIEST_TIME, LATEST, LATEST_TIME, PER_DAY, PER_HOUR, PER_MINUTE,
		PER_SECOND, RATE, SPARKLINE, C, DC)
	mark(Math,
		ABS, CBRT, CEIL, CEILING, CONV, CRC32, E, EXP, FLOOR, LN, LOG, LOG10,
		LOG2, MOD, PI, POW, POWER, RAND, ROUND, SIGN, SQRT, TRUNCATE)
	mark(Trigonometric,
		ACOS, ASIN, ATAN, ATAN2, COS, COT, DEGREES, RADIANS, SIN, TAN)
	mark(DateTime,
		ADDDATE, ADDTIME, CONVERT_TZ, CURDATE, CURRENT_DATE, CURRENT_TIME,
		CURRENT_TIMESTAMP, CURTIME, DATE, DATEDIFF, DATETIME, DATE_ADD,
		DATE_FORMAT, DATE_SUB, DAY, DAYNAME, DAYOFMONTH, DAYOFWEEK, DAYOFYEAR,
		DAY_OF_MONTH, DAY_OF_WEEK, DAY_OF_YEAR, FROM_DAYS, FROM_UNIXTIME, HOUR,
		HOUR_OF_DAY, LAST_DAY, LOCALTIME, LOCALTIMESTAMP, MAKEDATE, MAKETIME,
		MICROSECOND, MINUTE, MINUTE_OF_DAY, MINUTE_OF_HOUR, MONTH, MONTHNAME,
		MONTH_OF_YEAR, NOW, PERIOD_ADD, PERIOD_DIFF, QUARTER, SECOND,
		SECOND_OF_MINUTE, SEC_TO_TIME, STR_TO_DATE, SUBDATE, SUBTIME, SYSDATE,
		TIME, TIMEDIFF, TIMESTAMP, TIME_FORMAT, TIME_TO_SEC, TO_DAYS,
		TO_SECONDS, UNIX_TIMESTAMP, UTC_DATE, UTC_TIME, UTC_TIMESTAMP, WEEK,
		WEEKDAY, WEEK_OF_YEAR, YEAR, YEARWEEK)
	mark(Text,
		SUBSTR, SUBSTRING, LTRIM, RTRIM, TRIM, LOWER, UPPER, CONCAT, CONCAT_WS,
		LENGTH, STRCMP, RIGHT, LEFT, ASCII, LOCATE, REPLACE, REVERSE)
	mark(Condition, LIKE, ISNULL, ISNOTNULL, IFNULL, NULLIF, IF)
	mark(System, TYPEOF)
	mark(PositionFunction, POSITION)
	mark(RelevanceSingle, MATCH, MATCH_PHRASE, MATCH_PHRASE_PREFIX, MATCH_BOOL_PREFIX)
	mark(RelevanceMulti, SIMPLE_QUERY_STRING, MULTI_MATCH, QUERY_STRING)
	mark(RelevanceArg,
		ALLOW_LEADING_WILDCARD, ANALYZE_WILDCARD, ANALYZER,
		AUTO_GENERATE_SYNONYMS_PHRASE_QUERY, BOOST, CUTOFF_FREQUENCY,
		DEFAULT_FIELD, DEFAULT_OPERATOR, ENABLE_POSITION_INCREMENTS, ESCAPE,
		FLAGS, FUZZY_MAX_EXPANSIONS, FUZZY_PREFIX_LENGTH, FUZZY_TRANSPOSITIONS,
		FUZZY_REWRITE, FUZZINESS, LENIENT, LOW_FREQ_OPERATOR,
		MAX_DETERMINIZED_STATES, MAX_EXPANSIONS, MINIMUM_SHOULD_MATCH, OPERATOR,
		PHRASE_SLOP, PREFIX_LENGTH, QUOTE_ANALYZER, QUOTE_FIELD_SUFFIX, REWRITE,
		SLOP, TIE_BREAKER, TYPE, ZERO_TERMS_QUERY, TIME_ZONE)
	mark(IntervalUnit,
		MICROSECOND, SECOND, MINUTE, HOUR, DAY, WEEK, MONTH, QUARTER, YEAR,
		SECOND_MICROSECOND, MINUTE_MICROSECOND, MINUTE_SECOND, HOUR_MICROSECOND,
		HOUR_SECOND, HOUR_MINUTE, DAY_MICROSECOND, DAY_SECOND, DAY_MINUTE,
		DAY_HOUR, YEAR_MONTH)
	mark(TimespanUnit,
		D, MS, S, M, H, W, Q, Y, MILLISECOND, SECOND, MINUTE, HOUR, DAY, WEEK,
		MONTH, QUARTER, YEAR)
	mark(DataType,
		DATE, TIME, TIMESTAMP, INT, INTEGER, DOUBLE, LONG, FLOAT, STRING, BOOLEAN)

	// Keywords usable where an identifier is expected.
	mark(CanBeID, D, SPAN, SOURCE, INDEX, DESC, DATASOURCES, SORTBY, STR, IP, NUM)
	for t := keyword_beg + 1; t < keyword_end; t++ {
		c := categories[t]
		if c&(Command|CommandArg|StatsFunction|EvalFunction|RelevanceArg|IntervalUnit|TimespanUnit) != 0 {
			categories[t] |= CanBeID
		}
	}
}

// Is reports whether tok belongs to any of the categories in cat.
func (tok Token) Is(cat Category) bool {
	if !tok.IsKeyword() {
		return false
	}
	return categories[tok]&cat != 0
}

// CanBeIdent reports whether tok may be used as a field or table name.
func (tok Token) CanBeIdent() bool {
	return tok == ID || tok.Is(CanBeID)
}

// reserved keywords never name a field.
var reserved = []Token{
	AS, BY, AND, OR, NOT, XOR, TRUE, FALSE, IN, CASE, ELSE, REGEXP, CAST,
	INTERVAL, EXTRACT, GET_FORMAT, TIMESTAMPADD, TIMESTAMPDIFF, AUTO, TO,
	DATAMODEL, LOOKUP, SAVEDSEARCH,
}

// Reserved returns the keywords that can never be used as identifiers.
func Reserved() []Token {
	out := make([]Token, len(reserved))
	copy(out, reserved)
	return out
}
