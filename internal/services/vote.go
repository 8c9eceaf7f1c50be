package services

// ApplyVote computes the next vote state for one viewer on one target.
// userVote is the viewer's current direction (-1, 0 or 1), count the target's
// current vote count, value the requested direction (1 or -1).
//
// Voting the same direction again retracts the vote; voting the other
// direction switches it, moving the count by 2. The caller must persist the
// returned pair atomically so count and direction never disagree.
func ApplyVote(userVote, count, value int) (newVote, newCount int) {
	if value == userVote {
		// Retract
		return 0, count - userVote
	}
	return value, count - userVote + value
}
