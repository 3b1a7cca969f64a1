// Package motivation picks the encouragement shown after a check-in.
package motivation

import "fmt"

var messages = map[int]string{
	1:   "🎉 Day 1 complete! You avoided sugar today. Your skin thanks you!",
	2:   "💪 Two days strong! Your body is already starting to adjust.",
	3:   "✨ Day 3 done! Notice how your energy levels are stabilizing?",
	4:   "🌟 Four days of freedom! Your taste buds are beginning to reset.",
	5:   "🚀 Five days in! Cravings should be getting easier to manage.",
	6:   "💎 Six days of strength! You're building an incredible habit.",
	7:   "🎊 One week complete! Cravings are already starting to fade.",
	8:   "🌈 Day 8 victory! Your mood swings are becoming more balanced.",
	9:   "⚡ Nine days strong! Feel that steady energy throughout the day?",
	10:  "🏆 Double digits! Your willpower is getting stronger each day.",
	11:  "🌸 Day 11 success! Your skin is likely looking clearer now.",
	12:  "🧠 Twelve days in! Mental clarity is one of your new superpowers.",
	13:  "💝 Lucky day 13! You're loving your body by avoiding sugar.",
	14:  "🎯 Two weeks complete! Habits are forming - you're doing amazing!",
	15:  "🌊 Day 15 flow! Notice how you don't need sugar for energy anymore?",
	16:  "🔥 Sixteen days of fire! Your metabolism is thanking you.",
	17:  "🌅 Day 17 sunrise! Each day brings you closer to your goal.",
	18:  "🎪 Day 18 celebration! You're in the final stretch - keep going!",
	19:  "⭐ Nineteen days of stardom! You're a sugar-free champion.",
	20:  "🎨 Day 20 masterpiece! You've painted a beautiful healthy habit.",
	21:  "🏅 21 DAYS COMPLETE! You've built a new habit! Your energy is rising!",
	30:  "🚀 30 days of power! You're officially sugar-free royalty!",
	50:  "💎 50 days of diamonds! Halfway to 100 - you're unstoppable!",
	75:  "🏔️ 75 days conquered! You've climbed the mountain of change!",
	100: "👑 100 DAYS CHAMPION! You've completely transformed your relationship with sugar!",
}

// Message returns the encouragement for reaching the given streak day.
func Message(day int) string {
	if msg, ok := messages[day]; ok {
		return msg
	}
	switch {
	case day < 7:
		return fmt.Sprintf("🌟 Day %d complete! Every sugar-free day is a victory for your health!", day)
	case day < 21:
		return fmt.Sprintf("💪 %d days strong! You're building incredible willpower and self-control.", day)
	case day < 50:
		return fmt.Sprintf("🚀 Day %d achieved! Your body is loving this healthy transformation!", day)
	case day < 100:
		return fmt.Sprintf("👑 %d days of excellence! You're a true sugar-free warrior!", day)
	default:
		return fmt.Sprintf("🏆 Day %d mastery! You've gone beyond the challenge - you're living the lifestyle!", day)
	}
}

// Tip is shown on the home screen.
const Tip = "Every sugar-free day is a victory for your health and well-being."

// Tips are general suggestions shown on the settings screen.
var Tips = []string{
	"Stay hydrated with water throughout the day",
	"Replace sugar cravings with healthy fruits",
	"Read food labels carefully",
	"Get enough sleep to reduce cravings",
	"Celebrate small victories along the way",
}
