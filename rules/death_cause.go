package rules

const (
	// DeathCauseSnakeSelfCollision is the death reason when a snake runs into its own body
	DeathCauseSnakeSelfCollision = "snake-self-collision"
	// DeathCauseSnakeCollision is the death reason when a snake runs into the other snake's body
	DeathCauseSnakeCollision = "snake-collision"
	// DeathCauseHeadToHeadCollision is when both heads land on the same cell, both snakes die
	DeathCauseHeadToHeadCollision = "head-collision"
)
