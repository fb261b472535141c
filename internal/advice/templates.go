package advice

// BranchTag identifies which template pool a selection came from, as
// "group/variant". Tests and API responses assert on the tag; the strings
// themselves are copy and may change freely.
type BranchTag string

// Variant suffixes shared across groups.
const (
	variantHighStress = "high-stress"
	variantLowMood    = "low-mood"
	variantLowSleep   = "low-sleep"
	variantGeneric    = "generic"
)

// Keyword group names in priority order.
const (
	groupTimeManagement = "time-management"
	groupProductivity   = "productivity"
	groupStudy          = "study"
	groupStress         = "stress"
	groupMood           = "mood"
	groupSleep          = "sleep"
	groupEnergy         = "energy"
	groupSocial         = "social"
	groupExercise       = "exercise"
	groupFood           = "food"
	groupDefault        = "default"
)

// BranchEmptyQuery is returned when the user sends a blank query.
const BranchEmptyQuery BranchTag = "empty-query"

func tag(group, variant string) BranchTag {
	return BranchTag(group + "/" + variant)
}

// templates maps each branch to its pool of canned responses. The pick is
// keyed off the query text so different questions vary the copy while the
// same question always gets the same answer.
var templates = map[BranchTag][]string{
	BranchEmptyQuery: {
		"Ask me something! I can help with time management, stress, sleep, mood, productivity, and more.",
	},

	tag(groupTimeManagement, variantHighStress): {
		"Time management gets harder when stressed. Try the Pomodoro Technique: 25 minutes of focused work, then a 5 minute break. Use your breaks to breathe or stretch. Start with 2-3 Pomodoros today.",
		"When stress is high, shrink the plan. Pick one task, set a 25 minute timer, and take a real break after. What's the first task you'll tackle?",
	},
	tag(groupTimeManagement, variantLowMood): {
		"When feeling low, start small. Make a 3-item to-do list for today and pick the easiest task first to build momentum. What's one quick win you can check off?",
	},
	tag(groupTimeManagement, variantGeneric): {
		"A proven system: 1) write down all tasks, 2) pick the top 3 for today, 3) time-block them. Start tomorrow with your most important task.",
		"Try time-blocking: assign each of your top three tasks a specific hour. Protect the first block of your day for the hardest one.",
	},

	tag(groupProductivity, variantHighStress): {
		"High stress kills productivity. First, take 5 deep breaths. Then use the 2-minute rule: if a task takes under 2 minutes, do it now. Break big tasks into tiny steps.",
	},
	tag(groupProductivity, variantLowSleep): {
		"Poor sleep means poor focus. Aim for 7-8 hours tonight. For now, try the Pomodoro Technique: 25 minutes of work, 5 minute break, and no screens during breaks.",
	},
	tag(groupProductivity, variantGeneric): {
		"Boost focus: 1) remove distractions (phone on silent), 2) block distracting sites during work time, 3) take breaks every 25-30 minutes. Start a 25 minute focused session now.",
		"Focus is built, not found. Put the phone in another room, pick one task, and commit to 25 undistracted minutes.",
	},

	tag(groupStudy, variantHighStress): {
		"Study stress is real. Use the Pomodoro Technique: 25 minutes of study, 5 minute break. During breaks, stretch or breathe rather than checking your phone.",
	},
	tag(groupStudy, variantLowSleep): {
		"Sleep affects memory. Aim for 7-8 hours tonight to retain what you study. For now, try active recall: after reading, close the book and summarize from memory.",
	},
	tag(groupStudy, variantGeneric): {
		"Effective studying: 1) active recall (test yourself), 2) spaced repetition (review regularly), 3) teach the material to someone else.",
		"Passive re-reading is the least effective way to learn. Quiz yourself, space out reviews, and explain concepts out loud.",
	},

	tag(groupStress, variantHighStress): {
		"Your stress is high, so let's lower it. Try 4-7-8 breathing: inhale 4, hold 7, exhale 8, repeated 4 times. Then write down three things causing stress and pick one small action.",
		"When stress peaks, the body needs a signal to stand down. Four rounds of 4-7-8 breathing, then name the single stressor you can act on today.",
	},
	tag(groupStress, variantLowMood): {
		"Stress plus low mood is a tough combination. Start with movement: a 5 minute walk or stretch. Then try box breathing: inhale 4, hold 4, exhale 4, hold 4.",
	},
	tag(groupStress, variantGeneric): {
		"Stress management starts small. Try the 5-4-3-2-1 grounding technique: name 5 things you see, 4 you hear, 3 you touch, 2 you smell, 1 you taste.",
		"A short reset beats pushing through: step away for five minutes, breathe slowly, and come back to one task at a time.",
	},

	tag(groupMood, variantLowMood): {
		"Your mood is really low, and that's tough. Start tiny: open a window, take 10 deep breaths, text one friend. Movement helps too, even a 5 minute walk.",
		"Low days call for the smallest possible steps: light, water, a few minutes of movement, one message to someone you trust.",
	},
	tag(groupMood, variantLowSleep): {
		"Low mood plus poor sleep is a rough combination. Prioritize 7-8 hours tonight. For now, get some sunlight, even 5 minutes outside, and drink water.",
	},
	tag(groupMood, variantGeneric): {
		"Mood boosters: 1) movement, even a 5 minute walk, 2) social connection, text a friend, 3) gratitude, name three things you're grateful for.",
	},

	tag(groupSleep, variantLowSleep): {
		"Your sleep is low. Aim for 7-8 hours tonight. Sleep hygiene basics: no screens an hour before bed, a cool dark room, and a consistent schedule.",
		"Rebuilding sleep starts tonight: set a bedtime, dim the lights an hour before, and keep the room cool. Consistency beats catching up on weekends.",
	},
	tag(groupSleep, variantHighStress): {
		"Stress disrupts sleep. Try progressive muscle relaxation before bed: tense each muscle group for 5 seconds, then release. Or use 4-7-8 breathing.",
	},
	tag(groupSleep, variantGeneric): {
		"Good sleep improves everything. Keep a consistent schedule even on weekends, skip caffeine after 2 PM, and keep the room cool.",
	},

	tag(groupEnergy, variantLowSleep): {
		"Low energy usually means poor sleep. Aim for 7-8 hours tonight. For now: get sunlight for 5-10 minutes, move your body even briefly, and drink water.",
	},
	tag(groupEnergy, variantLowMood): {
		"Low mood drains energy. Start with movement: a 5 minute walk, one song of dancing, or a stretch. Then apply the 2-minute rule to the next task.",
	},
	tag(groupEnergy, variantGeneric): {
		"Energy boosters: morning sunlight, a few minutes of movement, steady hydration, and protein-rich snacks.",
	},

	tag(groupSocial, variantLowMood): {
		"Social connection helps mood. Start small: text one friend, join a study group, or attend one event. Quality beats quantity.",
	},
	tag(groupSocial, variantGeneric): {
		"Social wellness: schedule regular check-ins with friends, join activities you actually enjoy, and put the phone away during conversations.",
	},

	tag(groupExercise, variantHighStress): {
		"Exercise reduces stress. Start small: a 10 minute walk, a 5 minute stretch, or dancing to a few songs. Movement releases endorphins.",
	},
	tag(groupExercise, variantLowMood): {
		"Exercise boosts mood, and even 5 minutes helps. Try walking, dancing, stretching, or yoga. Start with one song and build from there.",
	},
	tag(groupExercise, variantGeneric): {
		"Movement is medicine. Start small at 5-10 minutes, find something you enjoy, and make it social. Consistency beats intensity.",
	},

	tag(groupFood, variantLowMood): {
		"Food affects mood. Eat regular meals, include protein, and stay hydrated. Avoid sugar crashes when stressed.",
	},
	tag(groupFood, variantGeneric): {
		"Nutrition basics: eat regular meals, include protein to stay full, stay hydrated, and balance protein, carbs, and vegetables.",
	},

	tag(groupDefault, variantHighStress): {
		"Your stress is high. Try 5 deep breaths using 4-7-8: inhale 4, hold 7, exhale 8. Then identify one small stressor you can address today.",
	},
	tag(groupDefault, variantLowMood): {
		"Your mood is low, and that's okay. Start small: take 10 deep breaths, get some sunlight even for 5 minutes, and move your body.",
	},
	tag(groupDefault, variantLowSleep): {
		"Your sleep is low. Prioritize 7-8 hours tonight; sleep affects mood, focus, and energy. Try a wind-down routine with no screens before bed.",
	},
	tag(groupDefault, variantGeneric): {
		"A general wellness tip: take 3 deep breaths, name one thing you're grateful for, and take one small action toward your goal.",
		"Small consistent actions beat grand plans. Pick one thing you can do in the next ten minutes and do it.",
	},
}

// nonWellnessFallback closes the provider chain when every external
// generator fails on an off-topic question.
const nonWellnessFallback = "That's an interesting question! I'm mainly here to help with wellness topics like stress, sleep, and mood, but I'm always up for a chat. What's on your mind?"
