package entity

import (
	"strings"

	"github.com/google/uuid"
)

// ResolvedQuestion is a question row flattened together with the hierarchy it
// was reached through. It holds plain values only.
type ResolvedQuestion struct {
	Id             int64
	Text           string
	DataType       string
	Order          int
	IsMandatory    bool
	QuestionBankId *int64
	RiskLevel      *string
	SafetyLevel    *string
	Category       *string
	Description    *string

	SubSectionId   int64
	SubSectionName string
	SectionId      int64
	SectionName    string
	TemplateId     uuid.UUID
	TemplateName   string
	TemplateRisk   *string
}

// EffectiveRiskLevel is the question's own risk level, falling back to the
// template's risk tag. Blank values count as absent.
func (q *ResolvedQuestion) EffectiveRiskLevel() (string, bool) {
	if q.RiskLevel != nil && strings.TrimSpace(*q.RiskLevel) != "" {
		return *q.RiskLevel, true
	}
	if q.TemplateRisk != nil && strings.TrimSpace(*q.TemplateRisk) != "" {
		return *q.TemplateRisk, true
	}

	return "", false
}

type BankKeyKind int

const (
	// BankKeyUnique identifies a question that must never be merged.
	BankKeyUnique BankKeyKind = iota
	// BankKeyShared identifies a logical question shared through a bank id.
	BankKeyShared
)

// BankKey is the grouping identity of a question. For BankKeyShared Id is the
// bank id, for BankKeyUnique it is the question's own id.
type BankKey struct {
	Kind BankKeyKind
	Id   int64
}

func SharedBank(bankId int64) BankKey {
	return BankKey{Kind: BankKeyShared, Id: bankId}
}

func UniqueQuestion(questionId int64) BankKey {
	return BankKey{Kind: BankKeyUnique, Id: questionId}
}

// BankKeyOf treats a missing or zero bank id as unique.
func BankKeyOf(q *ResolvedQuestion) BankKey {
	if q.QuestionBankId != nil && *q.QuestionBankId != 0 {
		return SharedBank(*q.QuestionBankId)
	}

	return UniqueQuestion(q.Id)
}

// controller model
type QuestionOutputModel struct {
	Id             int64  `json:"id"`
	Text           string `json:"text"`
	Type           string `json:"type"`
	Category       string `json:"category"`
	Required       bool   `json:"required"`
	Order          int    `json:"order"`
	SectionId      int64  `json:"sectionId"`
	SectionName    string `json:"sectionName"`
	SubSectionId   int64  `json:"subSectionId"`
	TemplateId     string `json:"templateId"`
	QuestionBankId *int64 `json:"questionBankId"`
}

// controller model
type DeduplicatedQuestion struct {
	QuestionOutputModel
	Description   *string  `json:"description,omitempty"`
	RiskLevel     *string  `json:"riskLevel"`
	RiskLevels    []string `json:"riskLevels"`
	TemplateCount int      `json:"templateCount"`
	IsDuplicate   bool     `json:"isDuplicate"`
	QuestionIds   []int64  `json:"questionIds"`
}

// controller model
type QuestionWithRiskLevels struct {
	QuestionId     int64    `json:"questionId"`
	QuestionText   string   `json:"questionText"`
	QuestionBankId *int64   `json:"questionBankId"`
	RiskLevels     []string `json:"riskLevels"`
	TemplateCount  int      `json:"templateCount"`
	DragType       string   `json:"dragType"`
}
