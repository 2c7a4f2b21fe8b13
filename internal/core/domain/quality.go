package domain

import "strings"

// The quality indicators describe how trustworthy an antique listing is.
// Each one is a closed set with an UNKNOWN fallback; the Parse functions
// are the only construction path from untrusted input.

type Condition string

const (
	ConditionExcellent Condition = "EXCELLENT"
	ConditionGreat     Condition = "GREAT"
	ConditionGood      Condition = "GOOD"
	ConditionFair      Condition = "FAIR"
	ConditionPoor      Condition = "POOR"
	ConditionUnknown   Condition = "UNKNOWN"
)

var Conditions = []Condition{
	ConditionExcellent,
	ConditionGreat,
	ConditionGood,
	ConditionFair,
	ConditionPoor,
	ConditionUnknown,
}

func ParseCondition(raw string) Condition {
	switch c := Condition(strings.ToUpper(raw)); c {
	case ConditionExcellent, ConditionGreat, ConditionGood,
		ConditionFair, ConditionPoor:
		return c
	default:
		return ConditionUnknown
	}
}

func (c Condition) WireValue() string {
	switch c {
	case ConditionExcellent, ConditionGreat, ConditionGood,
		ConditionFair, ConditionPoor:
		return string(c)
	default:
		return string(ConditionUnknown)
	}
}

func (c Condition) TranslationKey() string {
	return qualityTranslationKey("condition", string(c))
}

type Authenticity string

const (
	AuthenticityOriginal     Authenticity = "ORIGINAL"
	AuthenticityLaterCopy    Authenticity = "LATER_COPY"
	AuthenticityReproduction Authenticity = "REPRODUCTION"
	AuthenticityQuestionable Authenticity = "QUESTIONABLE"
	AuthenticityUnknown      Authenticity = "UNKNOWN"
)

var Authenticities = []Authenticity{
	AuthenticityOriginal,
	AuthenticityLaterCopy,
	AuthenticityReproduction,
	AuthenticityQuestionable,
	AuthenticityUnknown,
}

func ParseAuthenticity(raw string) Authenticity {
	switch a := Authenticity(strings.ToUpper(raw)); a {
	case AuthenticityOriginal, AuthenticityLaterCopy,
		AuthenticityReproduction, AuthenticityQuestionable:
		return a
	default:
		return AuthenticityUnknown
	}
}

func (a Authenticity) WireValue() string {
	switch a {
	case AuthenticityOriginal, AuthenticityLaterCopy,
		AuthenticityReproduction, AuthenticityQuestionable:
		return string(a)
	default:
		return string(AuthenticityUnknown)
	}
}

func (a Authenticity) TranslationKey() string {
	return qualityTranslationKey("authenticity", string(a))
}

type Provenance string

const (
	ProvenanceComplete Provenance = "COMPLETE"
	ProvenancePartial  Provenance = "PARTIAL"
	ProvenanceClaimed  Provenance = "CLAIMED"
	ProvenanceNone     Provenance = "NONE"
	ProvenanceUnknown  Provenance = "UNKNOWN"
)

var Provenances = []Provenance{
	ProvenanceComplete,
	ProvenancePartial,
	ProvenanceClaimed,
	ProvenanceNone,
	ProvenanceUnknown,
}

func ParseProvenance(raw string) Provenance {
	switch p := Provenance(strings.ToUpper(raw)); p {
	case ProvenanceComplete, ProvenancePartial, ProvenanceClaimed,
		ProvenanceNone:
		return p
	default:
		return ProvenanceUnknown
	}
}

func (p Provenance) WireValue() string {
	switch p {
	case ProvenanceComplete, ProvenancePartial, ProvenanceClaimed,
		ProvenanceNone:
		return string(p)
	default:
		return string(ProvenanceUnknown)
	}
}

func (p Provenance) TranslationKey() string {
	return qualityTranslationKey("provenance", string(p))
}

type Restoration string

const (
	RestorationNone    Restoration = "NONE"
	RestorationMinor   Restoration = "MINOR"
	RestorationMajor   Restoration = "MAJOR"
	RestorationUnknown Restoration = "UNKNOWN"
)

var Restorations = []Restoration{
	RestorationNone,
	RestorationMinor,
	RestorationMajor,
	RestorationUnknown,
}

func ParseRestoration(raw string) Restoration {
	switch r := Restoration(strings.ToUpper(raw)); r {
	case RestorationNone, RestorationMinor, RestorationMajor:
		return r
	default:
		return RestorationUnknown
	}
}

func (r Restoration) WireValue() string {
	switch r {
	case RestorationNone, RestorationMinor, RestorationMajor:
		return string(r)
	default:
		return string(RestorationUnknown)
	}
}

func (r Restoration) TranslationKey() string {
	return qualityTranslationKey("restoration", string(r))
}

func qualityTranslationKey(kind, member string) string {
	return "product.qualityIndicators." + kind + "." + strings.ToLower(member)
}
