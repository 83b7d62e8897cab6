package quiz

import "github.com/playgeo/closercountry/internal/atlas"

// Judge compares the player's guess against freshly computed distances.
// Client-submitted names are identifiers only; distances are always
// recomputed here. The submitted names must match the session's active
// round exactly, otherwise ErrUnknownCountry and the session is untouched.
func (e *Engine) Judge(s *Session, baseName, chosenName, otherName string) (GuessResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return GuessResult{}, ErrNoActiveRound
	}
	r := *s.current

	if baseName != r.Base.Name {
		return GuessResult{}, ErrUnknownCountry
	}
	var chosen, other atlas.Country
	switch {
	case chosenName == r.CandidateA.Name && otherName == r.CandidateB.Name:
		chosen, other = r.CandidateA, r.CandidateB
	case chosenName == r.CandidateB.Name && otherName == r.CandidateA.Name:
		chosen, other = r.CandidateB, r.CandidateA
	default:
		return GuessResult{}, ErrUnknownCountry
	}

	chosenDist := DistanceKm(r.Base, chosen)
	otherDist := DistanceKm(r.Base, other)

	// Equal distances count for the player, which keeps the verdict
	// deterministic for identical inputs.
	correct := chosenDist <= otherDist

	res := GuessResult{
		Correct:          correct,
		ChosenDistanceKm: chosenDist,
		OtherDistanceKm:  otherDist,
	}
	s.current = nil

	if correct {
		res.Closer = chosen
		s.score++
		s.state = StateNoRound
		if s.score > s.highScore {
			s.highScore = s.score
			s.highImproved = true
			res.NewHighScore = true
		}
		res.Score = s.score
		res.HighScore = s.highScore
		return res, nil
	}

	res.Closer = other
	final := s.score
	s.state = StateGameOver
	s.gameOver = &GameOver{
		Base:             r.Base,
		Chosen:           chosen,
		Other:            other,
		ChosenDistanceKm: chosenDist,
		OtherDistanceKm:  otherDist,
		FinalScore:       final,
	}
	// A zero-point run has nothing worth submitting.
	if final > 0 {
		s.pendingScore = &final
	}

	res.GameOver = true
	res.Score = final
	res.HighScore = s.highScore
	res.NewHighScore = s.highImproved
	// Matching the high score still earns a leaderboard spot.
	res.PromptNickname = final > 0 && final >= s.highScore
	return res, nil
}
