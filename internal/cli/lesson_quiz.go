package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/at-ishikawa/nativecards/internal/attempt"
	"github.com/at-ishikawa/nativecards/internal/lesson"
	"github.com/at-ishikawa/nativecards/internal/server"
)

//go:generate mockgen -source=lesson_quiz.go -destination=../mocks/cli/mock_lesson_client.go -package=mock_cli LessonClient

type LessonClient interface {
	Lesson(ctx context.Context, criteria lesson.Criteria) ([]lesson.Item, error)
	CreateAttempt(ctx context.Context, req server.CreateAttemptRequest) (*attempt.Attempt, error)
}

// hintInput asks for the next hint instead of answering.
const hintInput = "?"

// LessonQuizCLI asks every item of one lesson and submits an attempt per answer.
type LessonQuizCLI struct {
	*InteractiveQuizCLI
	client  LessonClient
	items   []lesson.Item
	total   int
	correct int
}

// NewLessonQuizCLI fetches a lesson for criteria.
func NewLessonQuizCLI(
	ctx context.Context,
	client LessonClient,
	criteria lesson.Criteria,
	stdin io.Reader,
	stdout io.Writer,
) (*LessonQuizCLI, error) {
	items, err := client.Lesson(ctx, criteria)
	if err != nil {
		return nil, fmt.Errorf("client.Lesson() > %w", err)
	}
	return &LessonQuizCLI{
		InteractiveQuizCLI: newInteractiveQuizCLI(stdin, stdout),
		client:             client,
		items:              items,
	}, nil
}

// GetCardCount returns the number of remaining items
func (r *LessonQuizCLI) GetCardCount() int {
	return len(r.items)
}

func (r *LessonQuizCLI) Session(ctx context.Context) error {
	if len(r.items) == 0 {
		if r.total == 0 {
			fmt.Fprintln(r.stdoutWriter, "No cards to practice!")
		} else {
			fmt.Fprintf(r.stdoutWriter, "Lesson finished: %d/%d correct\n", r.correct, r.total)
		}
		return errEnd
	}
	item := r.items[0]

	fmt.Fprint(r.stdoutWriter, formatQuestion(item))
	hintCount := 0
	var userAnswer string
	for {
		_, _ = r.bold.Fprint(r.stdoutWriter, "> ")
		line, err := r.readLine()
		if err != nil {
			return err
		}
		if strings.TrimSpace(line) != hintInput {
			userAnswer = line
			break
		}
		hintCount++
		fmt.Fprintln(r.stdoutWriter, formatHint(item, hintCount))
	}

	answer := resolveAnswer(item, userAnswer)
	isCorrect := strings.EqualFold(answer, item.Word)

	created, err := r.client.CreateAttempt(ctx, server.CreateAttemptRequest{
		CardID:     item.ID,
		Form:       item.Form,
		IsCorrect:  isCorrect,
		IsHint:     hintCount > 0,
		HintCount:  hintCount,
		AnswerText: answer,
	})
	if err != nil {
		return fmt.Errorf("client.CreateAttempt() > %w", err)
	}

	r.total++
	if isCorrect {
		r.correct++
		fmt.Fprint(r.stdoutWriter, "✅ ")
		_, _ = r.green.Fprintf(r.stdoutWriter, "It's correct. %s (+%d)\n", r.bold.Sprint(item.Word), created.Score)
	} else {
		fmt.Fprint(r.stdoutWriter, "❌ ")
		_, _ = r.red.Fprintf(r.stdoutWriter, "It's wrong. The answer is %s (-%d)\n", r.bold.Sprint(item.Word), created.Score)
	}
	if item.Definition != "" {
		fmt.Fprintf(r.stdoutWriter, "   %s\n", r.italic.Sprint(item.Definition))
	}
	fmt.Fprintln(r.stdoutWriter)

	r.items = r.items[1:]
	return nil
}

func formatQuestion(item lesson.Item) string {
	var sb strings.Builder
	switch item.Form {
	case attempt.FormListen:
		sb.WriteString("[listen] Which one do you hear?\n")
		sb.WriteString(formatMeaning(item))
		sb.WriteString(formatChoices(item.Choices))
	case attempt.FormSpeak:
		sb.WriteString("[speak] Say the word for:\n")
		sb.WriteString(formatMeaning(item))
	default:
		sb.WriteString("[write] Write the word for:\n")
		sb.WriteString(formatMeaning(item))
	}
	fmt.Fprintf(&sb, "(type %q for a hint)\n", hintInput)
	return sb.String()
}

func formatMeaning(item lesson.Item) string {
	var sb strings.Builder
	if item.Definition != "" {
		fmt.Fprintf(&sb, "  %s\n", maskWord(item.Definition, item.Word))
	}
	if item.Translation != "" {
		fmt.Fprintf(&sb, "  %s\n", item.Translation)
	}
	if sb.Len() == 0 {
		fmt.Fprintf(&sb, "  (%s, %d letters)\n", item.Category, len([]rune(item.Word)))
	}
	return sb.String()
}

func formatChoices(choices []string) string {
	var sb strings.Builder
	for i, choice := range choices {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, choice)
	}
	return sb.String()
}

// formatHint reveals more of the answer as n grows.
// Listening already shows the meaning and choices, so its hints reveal leading letters right away.
// Other forms show the choices first.
func formatHint(item lesson.Item, n int) string {
	shown := n
	if item.Form != attempt.FormListen {
		if n == 1 {
			return strings.TrimRight(formatChoices(item.Choices), "\n")
		}
		shown = n - 1
	}
	word := []rune(item.Word)
	shown = min(shown, len(word))
	return fmt.Sprintf("  starts with %q", string(word[:shown]))
}

// resolveAnswer maps a choice number to its word.
func resolveAnswer(item lesson.Item, input string) string {
	input = strings.TrimSpace(input)
	if i, err := strconv.Atoi(input); err == nil && i >= 1 && i <= len(item.Choices) {
		return item.Choices[i-1]
	}
	return input
}
