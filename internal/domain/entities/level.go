package entities

// RelationshipLevel is the display band derived from affection.
type RelationshipLevel string

const (
	LevelStranger         RelationshipLevel = "stranger"
	LevelAcquaintance     RelationshipLevel = "acquaintance"
	LevelFriend           RelationshipLevel = "friend"
	LevelCloseFriend      RelationshipLevel = "close_friend"
	LevelRomanticInterest RelationshipLevel = "romantic_interest"
	LevelDating           RelationshipLevel = "dating"
	LevelCommittedPartner RelationshipLevel = "committed_partner"
	LevelSoulmate         RelationshipLevel = "soulmate"
)

// LevelBand is the inclusive affection range of one level.
type LevelBand struct {
	Level RelationshipLevel
	Title string
	Min   int
	Max   int
}

// LevelBands partition [MinAffection, MaxAffection] in ascending order.
var LevelBands = []LevelBand{
	{LevelStranger, "Stranger", 0, 10},
	{LevelAcquaintance, "Acquaintance", 11, 20},
	{LevelFriend, "Friend", 21, 35},
	{LevelCloseFriend, "Close Friend", 36, 50},
	{LevelRomanticInterest, "Romantic Interest", 51, 65},
	{LevelDating, "Dating", 66, 80},
	{LevelCommittedPartner, "Committed Partner", 81, 95},
	{LevelSoulmate, "Soulmate", 96, 100},
}

// Index returns the ordinal of the level, or -1 if unknown.
func (l RelationshipLevel) Index() int {
	for i, b := range LevelBands {
		if b.Level == l {
			return i
		}
	}
	return -1
}

// Title returns the display title of the level.
func (l RelationshipLevel) Title() string {
	if i := l.Index(); i >= 0 {
		return LevelBands[i].Title
	}
	return string(l)
}
