package a

type RelationshipRecord struct {
	Affection int
}

type Meter struct {
	Affection int
}

func badAssign(r *RelationshipRecord) {
	r.Affection = 10 // want "direct write to RelationshipRecord.Affection"
}

func badCompound(r RelationshipRecord) {
	r.Affection += 5 // want "direct write to RelationshipRecord.Affection"
}

func badIncrement(r *RelationshipRecord) {
	r.Affection++ // want "direct write to RelationshipRecord.Affection"
}

func badParen(r *RelationshipRecord) {
	(r).Affection = 1 // want "direct write to RelationshipRecord.Affection"
}

func goodRead(r *RelationshipRecord) int {
	return r.Affection + 1
}

func goodLiteral() *RelationshipRecord {
	return &RelationshipRecord{Affection: 3}
}

func goodOtherType(m *Meter) {
	m.Affection = 10
}

func goodLocal(r *RelationshipRecord) {
	affection := r.Affection
	affection++
	_ = affection
}
