package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TechniqueExample contrasts an unhelpful parental response with the one the
// technique teaches.
type TechniqueExample struct {
	Scenario          string `json:"scenario"`
	IncorrectResponse string `json:"incorrectResponse"`
	CorrectResponse   string `json:"correctResponse"`
}

type TechniqueFix struct {
	Problem  string `json:"problem"`
	Solution string `json:"solution"`
}

type Technique struct {
	Name            string             `json:"name"`
	Description     string             `json:"description"`
	Steps           []string           `json:"steps"`
	Examples        []TechniqueExample `json:"examples"`
	Troubleshooting []TechniqueFix     `json:"troubleshooting"`
}

// PillarAdaptation tailors a pillar's guidance to one age group.
type PillarAdaptation struct {
	Description string   `json:"description"`
	Examples    []string `json:"examples"`
}

// Pillar is one of the five fixed curriculum units, ordered 1-5. Pillars are
// read-only reference data seeded once at startup.
type Pillar struct {
	gorm.Model
	Name           string                                          `gorm:"not null" json:"name"`
	Description    string                                          `json:"description"`
	Order          int                                             `gorm:"column:sort_order;uniqueIndex" json:"order"`
	Icon           string                                          `json:"icon"`
	Techniques     datatypes.JSONType[[]Technique]                 `json:"techniques"`
	AgeAdaptations datatypes.JSONType[map[string]PillarAdaptation] `json:"ageAdaptations"`
}
