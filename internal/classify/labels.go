// Package classify turns face mesh geometry and skin color into categorical
// style labels.
package classify

import (
	"fmt"
	"strings"
)

// label pairs the stable key of a category with the text shown to users.
type label struct {
	key         string
	description string
}

func keyOf[T comparable](table map[T]label, v T) string {
	if l, ok := table[v]; ok {
		return l.key
	}
	return "unknown"
}

func descriptionOf[T comparable](table map[T]label, v T) string {
	if l, ok := table[v]; ok {
		return l.description
	}
	return "unknown"
}

func parseKey[T comparable](table map[T]label, kind, s string) (T, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for v, l := range table {
		if l.key == s {
			return v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("unknown %s %q", kind, s)
}

// Undertone is the coarse warm/cool/neutral skin classification.
type Undertone int

const (
	UndertoneUndetermined Undertone = iota
	UndertoneWarm
	UndertoneOlive
	UndertoneBalanced
	UndertoneCool
)

var undertoneLabels = map[Undertone]label{
	UndertoneUndetermined: {"undetermined", "could not determine"},
	UndertoneWarm:         {"warm", "warm (golden/peachy)"},
	UndertoneOlive:        {"olive", "neutral (olive)"},
	UndertoneBalanced:     {"balanced", "neutral (balanced)"},
	UndertoneCool:         {"cool", "cool (pinkish)"},
}

func (u Undertone) String() string      { return keyOf(undertoneLabels, u) }
func (u Undertone) Description() string { return descriptionOf(undertoneLabels, u) }

func (u Undertone) MarshalText() ([]byte, error) { return []byte(u.String()), nil }

func (u *Undertone) UnmarshalText(b []byte) error {
	v, err := ParseUndertone(string(b))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// ParseUndertone parses an undertone key such as "warm".
func ParseUndertone(s string) (Undertone, error) {
	return parseKey(undertoneLabels, "undertone", s)
}

// FaceShape is one of the six classic face shapes. The zero value is oval,
// which is also the fallback for degenerate geometry.
type FaceShape int

const (
	FaceOval FaceShape = iota
	FaceRound
	FaceSquare
	FaceHeart
	FaceOblong
	FaceDiamond
)

// FaceShapes lists every face shape in display order.
var FaceShapes = []FaceShape{FaceOval, FaceRound, FaceHeart, FaceSquare, FaceOblong, FaceDiamond}

var faceShapeLabels = map[FaceShape]label{
	FaceOval:    {"oval", "oval (balanced proportions)"},
	FaceRound:   {"round", "round (similar width and length)"},
	FaceSquare:  {"square", "square (strong jawline)"},
	FaceHeart:   {"heart", "heart (wider forehead, narrow chin)"},
	FaceOblong:  {"oblong", "oblong (long and narrow)"},
	FaceDiamond: {"diamond", "diamond (wide cheekbones)"},
}

func (f FaceShape) String() string      { return keyOf(faceShapeLabels, f) }
func (f FaceShape) Description() string { return descriptionOf(faceShapeLabels, f) }

func (f FaceShape) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

func (f *FaceShape) UnmarshalText(b []byte) error {
	v, err := ParseFaceShape(string(b))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// ParseFaceShape parses a face shape key such as "heart".
func ParseFaceShape(s string) (FaceShape, error) {
	return parseKey(faceShapeLabels, "face shape", s)
}

// NoseShape describes nose proportions relative to the face.
type NoseShape int

const (
	NoseBalanced NoseShape = iota
	NoseWideNarrowBridge
	NoseWide
	NoseNarrow
	NoseLong
	NoseThin
	NoseShort
)

var noseShapeLabels = map[NoseShape]label{
	NoseBalanced:         {"balanced", "balanced (classic proportions)"},
	NoseWideNarrowBridge: {"wide-narrow-bridge", "wide with narrow bridge"},
	NoseWide:             {"wide", "wide (broad nostrils)"},
	NoseNarrow:           {"narrow", "narrow (slim)"},
	NoseLong:             {"long", "long (prominent)"},
	NoseThin:             {"thin", "thin (delicate bridge)"},
	NoseShort:            {"short", "short (button-like)"},
}

func (n NoseShape) String() string      { return keyOf(noseShapeLabels, n) }
func (n NoseShape) Description() string { return descriptionOf(noseShapeLabels, n) }

// IsWide reports whether the nose is wide, with or without a narrow bridge.
func (n NoseShape) IsWide() bool {
	return n == NoseWide || n == NoseWideNarrowBridge
}

func (n NoseShape) MarshalText() ([]byte, error) { return []byte(n.String()), nil }

func (n *NoseShape) UnmarshalText(b []byte) error {
	v, err := ParseNoseShape(string(b))
	if err != nil {
		return err
	}
	*n = v
	return nil
}

// ParseNoseShape parses a nose shape key such as "wide".
func ParseNoseShape(s string) (NoseShape, error) {
	return parseKey(noseShapeLabels, "nose shape", s)
}

// BrowStyle is the eyebrow style.
type BrowStyle int

const (
	BrowStraight BrowStyle = iota
	BrowArched
)

var browLabels = map[BrowStyle]label{
	BrowStraight: {"straight", "straight"},
	BrowArched:   {"arched", "arched"},
}

func (b BrowStyle) String() string      { return keyOf(browLabels, b) }
func (b BrowStyle) Description() string { return descriptionOf(browLabels, b) }

func (b BrowStyle) MarshalText() ([]byte, error) { return []byte(b.String()), nil }

func (b *BrowStyle) UnmarshalText(text []byte) error {
	v, err := parseKey(browLabels, "eyebrow style", string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// LipStyle is the lip shape.
type LipStyle int

const (
	LipBalanced LipStyle = iota
	LipRound
	LipFull
	LipThin
	LipBunny
	LipHeart
	LipDiamond
)

var lipLabels = map[LipStyle]label{
	LipBalanced: {"balanced", "balanced"},
	LipRound:    {"round", "round"},
	LipFull:     {"full", "full"},
	LipThin:     {"thin", "thin"},
	LipBunny:    {"bunny", "bunny"},
	LipHeart:    {"heart", "heart"},
	LipDiamond:  {"diamond", "diamond"},
}

func (l LipStyle) String() string      { return keyOf(lipLabels, l) }
func (l LipStyle) Description() string { return descriptionOf(lipLabels, l) }

func (l LipStyle) MarshalText() ([]byte, error) { return []byte(l.String()), nil }

func (l *LipStyle) UnmarshalText(text []byte) error {
	v, err := parseKey(lipLabels, "lip style", string(text))
	if err != nil {
		return err
	}
	*l = v
	return nil
}
