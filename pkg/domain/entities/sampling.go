package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SampleStage represents a sampling milestone in the approval sequence
type SampleStage int

const (
	StageProto SampleStage = iota
	StageFit
	StageSizeSet
	StagePreProduction
	StageShipment
)

// String method for SampleStage enum
func (s SampleStage) String() string {
	switch s {
	case StageProto:
		return "Proto"
	case StageFit:
		return "Fit"
	case StageSizeSet:
		return "SizeSet"
	case StagePreProduction:
		return "PreProduction"
	case StageShipment:
		return "Shipment"
	default:
		return "Unknown"
	}
}

// ParseSampleStage parses a stage name as written in data files
func ParseSampleStage(s string) (SampleStage, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "proto":
		return StageProto, nil
	case "fit":
		return StageFit, nil
	case "sizeset":
		return StageSizeSet, nil
	case "preproduction":
		return StagePreProduction, nil
	case "shipment":
		return StageShipment, nil
	default:
		return StageProto, fmt.Errorf("invalid sample stage: %s (expected: Proto, Fit, SizeSet, PreProduction, or Shipment)", s)
	}
}

// SampleStatus represents the approval state of a sampling stage
type SampleStatus int

const (
	SamplePending SampleStatus = iota
	SampleSubmitted
	SampleApproved
	SampleRejected
)

// String method for SampleStatus enum
func (s SampleStatus) String() string {
	switch s {
	case SamplePending:
		return "Pending"
	case SampleSubmitted:
		return "Submitted"
	case SampleApproved:
		return "Approved"
	case SampleRejected:
		return "Rejected"
	default:
		return "Unknown"
	}
}

// SamplingStage represents one sampling record on the order
type SamplingStage struct {
	ID          string
	Stage       SampleStage
	Status      SampleStatus
	PlannedDate time.Time
	ActualDate  *time.Time
	Comments    string
}

// NewSamplingStage creates a pending sampling record
func NewSamplingStage(stage SampleStage, planned time.Time) *SamplingStage {
	return &SamplingStage{
		ID:          uuid.NewString(),
		Stage:       stage,
		Status:      SamplePending,
		PlannedDate: planned,
	}
}

// EmbellishmentType represents the decoration process applied to a garment
type EmbellishmentType int

const (
	EmbPrint EmbellishmentType = iota
	EmbEmbroidery
	EmbApplique
	EmbHeatTransfer
)

// String method for EmbellishmentType enum
func (e EmbellishmentType) String() string {
	switch e {
	case EmbPrint:
		return "Print"
	case EmbEmbroidery:
		return "Embroidery"
	case EmbApplique:
		return "Applique"
	case EmbHeatTransfer:
		return "HeatTransfer"
	default:
		return "Unknown"
	}
}

// Embellishment represents one decoration record on the order
type Embellishment struct {
	ID         string
	Type       EmbellishmentType
	Placement  string
	ArtworkRef string
	Vendor     string
}

// WashType represents the finishing wash applied to the garment
type WashType int

const (
	WashNone WashType = iota
	WashRinse
	WashEnzyme
	WashStone
	WashAcid
)

// String method for WashType enum
func (w WashType) String() string {
	switch w {
	case WashNone:
		return "None"
	case WashRinse:
		return "Rinse"
	case WashEnzyme:
		return "Enzyme"
	case WashStone:
		return "Stone"
	case WashAcid:
		return "Acid"
	default:
		return "Unknown"
	}
}

// WashSpec represents the order's wash and finishing requirements
type WashSpec struct {
	Type          WashType
	Shade         string
	PilotApproved bool
	ApprovedOn    *time.Time
}
