package snake

// eat applies scoring and speed-up for the food just consumed, places new
// food and levels up once enough food has been eaten in the current level.
func (s *Session) eat() Event {
	eaten := s.head()

	s.score += s.level * s.cfg.Progression.PointsPerLevel
	s.foodEaten++
	s.speedMS = s.curve.NextMS(s.speedMS)
	s.placeFood()

	if s.foodEaten >= s.cfg.Progression.LevelThreshold && s.level < s.cfg.Progression.MaxLevel {
		s.levelUp()
		return Event{Kind: EventLevelUp, Eaten: eaten}
	}
	return Event{Kind: EventFoodEaten, Eaten: eaten}
}

// levelUp advances the level and regenerates level-scaled content.
func (s *Session) levelUp() {
	s.level++
	s.foodEaten = 0
	s.placeObstacles()
	if s.level >= s.cfg.Villagers.UnlockLevel {
		s.placeVillagers()
	}
	s.addProps()
}
