package scoring

import (
	"errors"
	"fmt"
)

var ErrIdentityRequired = errors.New("name and email are required unless feedback is anonymous")

// CategoryCountError rejects a score that does not carry exactly one entry per
// judged category.
type CategoryCountError struct {
	Got int
}

func (e *CategoryCountError) Error() string {
	return fmt.Sprintf("scores must include exactly %d categories, got %d", CategoryCount, e.Got)
}

// CategoryRangeError names the offending category so the client can point at
// the right input.
type CategoryRangeError struct {
	Category string
	Score    int
}

func (e *CategoryRangeError) Error() string {
	return fmt.Sprintf("category %s score %d is outside the allowed range 0-%d", e.Category, e.Score, MaxCategoryScore)
}

type UnknownCategoryError struct {
	Category string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("unknown category %q", e.Category)
}

type DuplicateCategoryError struct {
	Category string
}

func (e *DuplicateCategoryError) Error() string {
	return fmt.Sprintf("category %q appears more than once", e.Category)
}

type UnknownRoundError struct {
	Round string
}

func (e *UnknownRoundError) Error() string {
	return fmt.Sprintf("unknown round %q", e.Round)
}

type RatingRangeError struct {
	Category string
	Score    int
}

func (e *RatingRangeError) Error() string {
	return fmt.Sprintf("rating for %s must be between %d and %d, got %d", e.Category, MinRatingScore, MaxRatingScore, e.Score)
}

type UnknownReactionError struct {
	Reaction string
}

func (e *UnknownReactionError) Error() string {
	return fmt.Sprintf("unknown reaction %q", e.Reaction)
}
