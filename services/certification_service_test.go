package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mafalia/teranga-network/models"
)

func gradeQuestions() []models.QuizQuestion {
	return []models.QuizQuestion{
		{ID: 1, CorrectAnswer: "A"},
		{ID: 2, CorrectAnswer: "B"},
		{ID: 3, CorrectAnswer: "C"},
		{ID: 4, CorrectAnswer: "D"},
	}
}

func TestGradeAllCorrect(t *testing.T) {
	result := Grade(gradeQuestions(), map[int]string{1: "A", 2: "B", 3: "C", 4: "D"})

	assert.Equal(t, 4, result.Correct)
	assert.Equal(t, 4, result.Total)
	assert.Equal(t, 100.0, result.Percentage)
	assert.True(t, result.Passed)
}

func TestGradePassBoundary(t *testing.T) {
	// 3/4 = 75%, exactly the passing threshold.
	result := Grade(gradeQuestions(), map[int]string{1: "A", 2: "B", 3: "C", 4: "A"})
	assert.Equal(t, 75.0, result.Percentage)
	assert.True(t, result.Passed)

	// 2/4 = 50%, below the threshold.
	result = Grade(gradeQuestions(), map[int]string{1: "A", 2: "B", 3: "A", 4: "A"})
	assert.Equal(t, 50.0, result.Percentage)
	assert.False(t, result.Passed)
}

func TestGradeUnansweredCountsAsWrong(t *testing.T) {
	result := Grade(gradeQuestions(), map[int]string{1: "A"})
	assert.Equal(t, 1, result.Correct)
	assert.False(t, result.Passed)

	result = Grade(gradeQuestions(), nil)
	assert.Equal(t, 0, result.Correct)
	assert.False(t, result.Passed)
}

func TestGradeNoQuestions(t *testing.T) {
	result := Grade(nil, map[int]string{1: "A"})

	assert.Zero(t, result.Correct)
	assert.Zero(t, result.Total)
	assert.Zero(t, result.Percentage)
	assert.False(t, result.Passed)
}

func TestGradeIgnoresUnknownQuestions(t *testing.T) {
	result := Grade(gradeQuestions(), map[int]string{1: "A", 2: "B", 3: "C", 4: "D", 99: "A"})
	assert.Equal(t, 4, result.Correct)
	assert.Equal(t, 4, result.Total)
}

func TestQuestionBankIntegrity(t *testing.T) {
	questions := QuestionBank()
	require.NotEmpty(t, questions)

	seen := make(map[int]bool)
	for _, question := range questions {
		assert.False(t, seen[question.ID], "duplicate question id %d", question.ID)
		seen[question.ID] = true

		assert.NotEmpty(t, question.Question)
		require.NotEmpty(t, question.Options, "question %d has no options", question.ID)

		valid := false
		for _, option := range question.Options {
			if option.ID == question.CorrectAnswer {
				valid = true
			}
		}
		assert.True(t, valid, "question %d: correct answer %q not among options", question.ID, question.CorrectAnswer)
	}
}
