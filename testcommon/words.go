package testcommon

// ReferenceWords is a small word list for board.ReferenceBoard. It holds
// words that can be traced on that board, some that cannot, and a couple
// that no board can ever hold.
var ReferenceWords = []string{
	"a", "ad", "ads", "arid", "as", "at", "ate", "care", "cares", "cat",
	"dais", "dare", "dares", "dear", "ear", "east", "eat", "eats", "ice",
	"ices", "its", "jo", "oe", "ore", "qat", "race", "raced", "raid",
	"rare", "read", "reads", "red", "reed", "rice", "rices", "roe", "sad",
	"said", "sat", "sea", "seat", "sir", "sit", "tae", "tas", "tea",
	"teas", "zebra",
}
