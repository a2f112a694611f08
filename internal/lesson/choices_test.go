package lesson

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_card "github.com/at-ishikawa/nativecards/internal/mocks/card"
)

// firstRandomizer always picks index 0 and never reorders.
type firstRandomizer struct{}

func (firstRandomizer) Intn(n int) int                     { return 0 }
func (firstRandomizer) Shuffle(n int, swap func(i, j int)) {}

func TestSelectChoices(t *testing.T) {
	words := []string{"apple", "banana", "cherry", "date", "elder", "fig"}

	tests := []struct {
		name       string
		words      []string
		additional string
		limit      int
		want       []string
	}{
		{
			name:  "takes limit words without additional",
			words: words,
			limit: 3,
			want:  []string{"apple", "banana", "cherry"},
		},
		{
			name:       "additional already sampled",
			words:      words,
			additional: "banana",
			limit:      3,
			want:       []string{"apple", "banana", "cherry", "date"},
		},
		{
			name:       "additional replaces the first sampled word",
			words:      words,
			additional: "fig",
			limit:      3,
			want:       []string{"banana", "cherry", "date", "fig"},
		},
		{
			name:       "pool smaller than limit",
			words:      []string{"apple", "banana"},
			additional: "zucchini",
			limit:      3,
			want:       []string{"banana", "zucchini"},
		},
		{
			name:       "empty pool keeps only the additional word",
			words:      []string{},
			additional: "zucchini",
			limit:      3,
			want:       []string{"zucchini"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := selectChoices(firstRandomizer{}, tt.words, tt.additional, tt.limit)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSelectChoices_ContainsAdditionalOnce(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	words := make([]string, 30)
	for i := range words {
		words[i] = fmt.Sprintf("word%d", i)
	}

	for i := 0; i < 200; i++ {
		additional := words[r.Intn(len(words))]
		got := selectChoices(r, words, additional, DefaultChoicesLimit)

		assert.Len(t, got, DefaultChoicesLimit+1)
		count := 0
		for _, w := range got {
			if w == additional {
				count++
			}
		}
		assert.Equal(t, 1, count, "choices %v", got)
	}
}

func TestChoiceSelector_Select(t *testing.T) {
	tests := []struct {
		name      string
		userID    int64
		words     []string
		setup     func(src *mock_card.MockCardRepository)
		want      []string
		wantErrIs error
		wantErr   bool
	}{
		{
			name:   "uses the given words",
			userID: 1,
			words:  []string{"apple", "banana"},
			setup:  func(src *mock_card.MockCardRepository) {},
			want:   []string{"apple", "banana"},
		},
		{
			name:   "falls back to the user's words",
			userID: 1,
			setup: func(src *mock_card.MockCardRepository) {
				src.EXPECT().RandomWords(gomock.Any(), int64(1), 100).Return([]string{"cherry", "date"}, nil)
			},
			want: []string{"cherry", "date"},
		},
		{
			name:      "no words and no user",
			setup:     func(src *mock_card.MockCardRepository) {},
			wantErrIs: ErrValidation,
		},
		{
			name:   "word source error",
			userID: 1,
			setup: func(src *mock_card.MockCardRepository) {
				src.EXPECT().RandomWords(gomock.Any(), int64(1), 100).Return(nil, fmt.Errorf("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			src := mock_card.NewMockCardRepository(ctrl)
			tt.setup(src)

			selector := NewChoiceSelector(src, firstRandomizer{}, 100)
			got, err := selector.Select(context.Background(), tt.userID, tt.words, "", DefaultChoicesLimit)
			if tt.wantErrIs != nil {
				assert.ErrorIs(t, err, tt.wantErrIs)
				return
			}
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
