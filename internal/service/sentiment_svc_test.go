package service

import "testing"

func TestScoreBatch_EmptyIsNeutral(t *testing.T) {
	svc := NewSentimentService()

	for i := 0; i < 3; i++ {
		if got := svc.ScoreBatch(nil); got != 0 {
			t.Errorf("ScoreBatch(nil) = %v, want 0", got)
		}
		if got := svc.ScoreBatch([]string{}); got != 0 {
			t.Errorf("ScoreBatch([]) = %v, want 0", got)
		}
	}
}

func TestScoreComment_Polarity(t *testing.T) {
	svc := NewSentimentService()

	positive := svc.ScoreComment("Good!, Great!, Fantastic!")
	negative := svc.ScoreComment("Terrible!, Horrible!, Sucks!")
	neutral := svc.ScoreComment("The video is twelve minutes long.")

	if positive < 0.5 {
		t.Errorf("positive comment scored %v, want >= 0.5", positive)
	}
	if negative > 0.05 {
		t.Errorf("negative comment scored %v, want ~0", negative)
	}
	if neutral > positive {
		t.Errorf("neutral (%v) scored above positive (%v)", neutral, positive)
	}
	if positive < 0 || positive > 1 || negative < 0 || negative > 1 {
		t.Errorf("scores out of [0,1]: pos=%v neg=%v", positive, negative)
	}
}

func TestScoreBatch_MonotonicInPositiveFraction(t *testing.T) {
	svc := NewSentimentService()

	allPositive := svc.ScoreBatch([]string{
		"Fantastic tutorial, I love it!",
		"Great, clear and very helpful.",
	})
	mixed := svc.ScoreBatch([]string{
		"Fantastic tutorial, I love it!",
		"This is awful and boring.",
	})
	allNegative := svc.ScoreBatch([]string{
		"This is awful and boring.",
		"Terrible. Waste of time.",
	})

	if !(allPositive > mixed && mixed > allNegative) {
		t.Errorf("want allPositive > mixed > allNegative, got %v, %v, %v",
			allPositive, mixed, allNegative)
	}
}

func TestScoreBatch_Deterministic(t *testing.T) {
	svc := NewSentimentService()
	comments := []string{"Great video!", "Meh.", "Loved the ending."}

	first := svc.ScoreBatch(comments)
	for i := 0; i < 5; i++ {
		if got := svc.ScoreBatch(comments); got != first {
			t.Fatalf("run %d = %v, first run = %v", i, got, first)
		}
	}
}
