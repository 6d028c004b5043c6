package seed

import (
	"confidencecompass/backend/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Run populates the curriculum reference data: the five confidence pillars,
// sample activities and the thirty daily challenges. It is idempotent and
// does nothing when pillars already exist.
func Run(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Pillar{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		pillars := pillarSeeds()
		for i := range pillars {
			if err := tx.Create(&pillars[i]).Error; err != nil {
				return err
			}
		}

		for _, activity := range activitySeeds(pillars) {
			if err := tx.Create(&activity).Error; err != nil {
				return err
			}
		}

		for _, challenge := range challengeSeeds(pillars) {
			if err := tx.Create(&challenge).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func adaptations(toddler, elementary, teen models.PillarAdaptation) datatypes.JSONType[map[string]models.PillarAdaptation] {
	return datatypes.NewJSONType(map[string]models.PillarAdaptation{
		"toddler":    toddler,
		"elementary": elementary,
		"teen":       teen,
	})
}

func pillarSeeds() []models.Pillar {
	return []models.Pillar{
		{
			Name:        "Independence & Problem-Solving",
			Description: "Building a child's ability to think for themselves, make decisions, and solve problems without constant adult intervention.",
			Order:       1,
			Icon:        "independence-icon.png",
			Techniques: datatypes.NewJSONType([]models.Technique{
				{
					Name:        `The "Ask, Don't Tell" Method`,
					Description: "Instead of giving direct answers or solutions, respond to children's questions with guiding questions that help them think through problems.",
					Steps: []string{
						"When your child asks for help, pause before jumping in",
						`Ask "What do you think you could try?"`,
						`Follow up with "What else could you try if that doesn't work?"`,
						"Provide guidance only after they've attempted their own solutions",
					},
					Examples: []models.TechniqueExample{
						{
							Scenario:          "Child can't find their shoes",
							IncorrectResponse: "They're under the couch. I'll get them.",
							CorrectResponse:   "Where have you already looked? Where did you take them off yesterday?",
						},
					},
					Troubleshooting: []models.TechniqueFix{
						{
							Problem:  "Child gets frustrated and gives up",
							Solution: "Break the problem into smaller steps and ask about one step at a time",
						},
					},
				},
			}),
			AgeAdaptations: adaptations(
				models.PillarAdaptation{
					Description: "Focus on simple choices and basic problem-solving with immediate feedback",
					Examples:    []string{"Let them choose between two options", "Create simple obstacle courses"},
				},
				models.PillarAdaptation{
					Description: "Introduce more complex problems with multiple solutions",
					Examples:    []string{`Use "what would you do if" scenarios`, "Create checklists for morning routines"},
				},
				models.PillarAdaptation{
					Description: "Focus on decision-making with long-term consequences",
					Examples:    []string{"Discuss hypothetical scenarios with pros and cons", "Allow them to plan family activities"},
				},
			),
		},
		{
			Name:        "Growth Mindset & Resilience",
			Description: "Developing a child's belief that abilities can be developed through dedication and hard work, and building the capacity to recover from difficulties.",
			Order:       2,
			Icon:        "growth-icon.png",
			Techniques: datatypes.NewJSONType([]models.Technique{
				{
					Name:        `The Power of "Yet"`,
					Description: `Adding the word "yet" to statements about inability helps children understand that skills develop over time with practice.`,
					Steps: []string{
						`When your child says "I can't do this," add "yet" to the end`,
						"Share stories of your own learning journey",
						"Celebrate effort and improvement, not just success",
						"Discuss famous failure-to-success stories",
					},
					Examples: []models.TechniqueExample{
						{
							Scenario:          "Child struggles with math homework",
							IncorrectResponse: "Maybe you're just not good at math.",
							CorrectResponse:   "You haven't mastered this concept yet, but you will with practice.",
						},
					},
					Troubleshooting: []models.TechniqueFix{
						{
							Problem:  "Child continues negative self-talk",
							Solution: `Create a "fixed mindset vs. growth mindset" chart to identify language patterns`,
						},
					},
				},
			}),
			AgeAdaptations: adaptations(
				models.PillarAdaptation{
					Description: "Use simple language and immediate examples",
					Examples:    []string{"Read stories about characters who persevere", "Use puppets to demonstrate trying again"},
				},
				models.PillarAdaptation{
					Description: "Connect effort to outcomes with concrete examples",
					Examples:    []string{`Keep a "growth journal" to track progress`, "Discuss learning from mistakes"},
				},
				models.PillarAdaptation{
					Description: "Apply growth mindset to academic and social challenges",
					Examples:    []string{"Analyze setbacks as learning opportunities", "Discuss brain plasticity and neurological growth"},
				},
			),
		},
		{
			Name:        "Social Confidence & Communication",
			Description: "Building a child's ability to express themselves clearly, interact positively with others, and navigate social situations with confidence.",
			Order:       3,
			Icon:        "social-icon.png",
			Techniques: datatypes.NewJSONType([]models.Technique{
				{
					Name:        "Conversation Starters",
					Description: "Equipping children with phrases and questions they can use to initiate conversations with peers and adults.",
					Steps: []string{
						"Brainstorm interesting questions together",
						"Role-play conversation scenarios at home",
						"Practice active listening skills",
						"Gradually increase social exposure",
					},
					Examples: []models.TechniqueExample{
						{
							Scenario:          "Child is nervous about making friends at a new school",
							IncorrectResponse: "Just go talk to someone. It's not that hard.",
							CorrectResponse:   `Let's practice some questions you could ask to get to know someone, like "What do you like to do after school?"`,
						},
					},
					Troubleshooting: []models.TechniqueFix{
						{
							Problem:  "Child freezes in actual social situations",
							Solution: "Start with structured activities where conversation happens naturally",
						},
					},
				},
			}),
			AgeAdaptations: adaptations(
				models.PillarAdaptation{
					Description: "Focus on basic greetings and sharing",
					Examples:    []string{"Practice saying hello and goodbye", "Use puppets for social stories"},
				},
				models.PillarAdaptation{
					Description: "Develop friendship skills and conflict resolution",
					Examples:    []string{"Role-play playground scenarios", "Practice joining group activities"},
				},
				models.PillarAdaptation{
					Description: "Address complex social dynamics and digital communication",
					Examples:    []string{"Discuss handling peer pressure", "Practice job interview skills"},
				},
			),
		},
		{
			Name:        "Purpose & Strength Discovery",
			Description: "Helping children identify their unique strengths, interests, and values to develop a sense of purpose and direction.",
			Order:       4,
			Icon:        "purpose-icon.png",
			Techniques: datatypes.NewJSONType([]models.Technique{
				{
					Name:        "Strength Spotting",
					Description: "Actively observing and naming specific character strengths and talents you notice in your child.",
					Steps: []string{
						"Observe your child in different settings",
						"Name specific strengths you notice (e.g., creativity, persistence)",
						"Provide concrete examples of when they demonstrated these strengths",
						"Help them see how their strengths can help others",
					},
					Examples: []models.TechniqueExample{
						{
							Scenario:          "Child helps a younger sibling with a puzzle",
							IncorrectResponse: "You're such a good kid.",
							CorrectResponse:   "I noticed how patient you were explaining the puzzle to your sister. Your patience and clear instructions really helped her succeed.",
						},
					},
					Troubleshooting: []models.TechniqueFix{
						{
							Problem:  "Child dismisses or downplays strengths",
							Solution: `Create a "strength evidence journal" to document examples`,
						},
					},
				},
			}),
			AgeAdaptations: adaptations(
				models.PillarAdaptation{
					Description: "Focus on basic interests and simple helping roles",
					Examples:    []string{"Offer varied activities to discover interests", "Create simple helper jobs"},
				},
				models.PillarAdaptation{
					Description: "Explore talents and community contributions",
					Examples:    []string{"Try different clubs and activities", "Participate in age-appropriate service projects"},
				},
				models.PillarAdaptation{
					Description: "Connect strengths to future goals and values",
					Examples:    []string{"Explore career paths aligned with strengths", "Develop leadership opportunities"},
				},
			),
		},
		{
			Name:        "Managing Fear & Anxiety",
			Description: "Equipping children with tools to understand, express, and manage their fears and anxieties in healthy ways.",
			Order:       5,
			Icon:        "anxiety-icon.png",
			Techniques: datatypes.NewJSONType([]models.Technique{
				{
					Name:        "Worry Time",
					Description: "Setting aside a specific, limited time each day for children to express their worries, which helps contain anxiety and develop coping strategies.",
					Steps: []string{
						`Schedule 10-15 minutes of "worry time" each day`,
						"During this time, listen to all worries without judgment",
						"Help categorize worries as controllable or uncontrollable",
						"Develop action plans for controllable worries",
					},
					Examples: []models.TechniqueExample{
						{
							Scenario:          "Child worries throughout the day about an upcoming test",
							IncorrectResponse: "Stop worrying so much. You'll be fine.",
							CorrectResponse:   "Let's save that worry for our worry time this evening. Then we can make a plan for how to prepare for the test.",
						},
					},
					Troubleshooting: []models.TechniqueFix{
						{
							Problem:  "Child's anxiety doesn't decrease with worry time",
							Solution: "Add relaxation techniques like deep breathing or visualization",
						},
					},
				},
			}),
			AgeAdaptations: adaptations(
				models.PillarAdaptation{
					Description: "Use simple emotional language and immediate comfort",
					Examples:    []string{"Name feelings with picture books", "Create comfort items for scary situations"},
				},
				models.PillarAdaptation{
					Description: "Develop concrete coping strategies",
					Examples:    []string{`Create a "worry monster" that eats written worries`, "Practice deep breathing techniques"},
				},
				models.PillarAdaptation{
					Description: "Address complex fears and develop long-term coping skills",
					Examples:    []string{"Discuss cognitive distortions", "Create personalized anxiety management plans"},
				},
			),
		},
	}
}

func activitySeeds(pillars []models.Pillar) []models.Activity {
	return []models.Activity{
		{
			PillarID:    pillars[0].ID,
			Title:       "Morning Routine Checklist",
			Description: "Create a visual checklist of morning tasks that your child can complete independently.",
			AgeGroup:    "elementary",
			Duration:    30,
			Materials:   datatypes.JSONSlice[string]{"Poster board", "Markers", "Stickers", "Optional: lamination"},
			Steps: datatypes.JSONSlice[string]{
				"Sit down with your child and list all morning tasks (brush teeth, get dressed, etc.)",
				"Create a colorful chart with each task illustrated",
				"Let your child check off or move a marker as each task is completed",
				"Gradually reduce your reminders over time",
			},
			LearningOutcomes: datatypes.JSONSlice[string]{
				"Develops independence in daily routines",
				"Builds time management skills",
				"Creates sense of accomplishment",
			},
			Tips: datatypes.JSONSlice[string]{
				"Take a photo of your child doing each task for a personalized chart",
				"Include a small reward for completing all tasks independently for a week",
				"Adjust the checklist as your child masters certain tasks",
			},
			Difficulty: "easy",
			Tags:       datatypes.JSONSlice[string]{"routine", "independence", "morning"},
		},
		{
			PillarID:    pillars[1].ID,
			Title:       `The "Power of Yet" Journal`,
			Description: "Create a journal to track progress on challenging skills and celebrate growth over time.",
			AgeGroup:    "elementary",
			Duration:    45,
			Materials:   datatypes.JSONSlice[string]{"Notebook", "Art supplies", "Photos (optional)"},
			Steps: datatypes.JSONSlice[string]{
				"Help your child identify a skill they want to improve",
				`Take a "before" picture or have them write/draw their current ability level`,
				"Create a practice plan with small, achievable steps",
				"Document progress weekly with notes, drawings, or photos",
				"Review the journal monthly to celebrate growth",
			},
			LearningOutcomes: datatypes.JSONSlice[string]{
				"Visualizes progress over time",
				"Connects effort with improvement",
				"Builds persistence through challenges",
			},
			Tips: datatypes.JSONSlice[string]{
				"Include quotes about growth mindset throughout the journal",
				`Add a section for "What I learned from mistakes"`,
				"Include both physical skills (sports, writing) and character skills (patience, sharing)",
			},
			Difficulty: "medium",
			Tags:       datatypes.JSONSlice[string]{"growth mindset", "journal", "progress tracking"},
		},
		{
			PillarID:    pillars[2].ID,
			Title:       "Conversation Jar",
			Description: "Create a jar of conversation starters for your child to practice social communication skills.",
			AgeGroup:    "all",
			Duration:    20,
			Materials:   datatypes.JSONSlice[string]{"Jar or container", "Paper strips", "Pens or markers"},
			Steps: datatypes.JSONSlice[string]{
				"Brainstorm interesting questions with your child",
				"Write each question on a strip of paper",
				"Decorate the jar",
				"Practice by drawing questions during family meals",
				"Role-play how to use these questions with new friends",
			},
			LearningOutcomes: datatypes.JSONSlice[string]{
				"Develops conversation initiation skills",
				"Builds active listening habits",
				"Increases comfort with social interactions",
			},
			Tips: datatypes.JSONSlice[string]{
				"Include a mix of light and deeper questions",
				"Add new questions regularly to keep it fresh",
				"Practice follow-up questions based on answers",
			},
			Difficulty: "easy",
			Tags:       datatypes.JSONSlice[string]{"communication", "social skills", "conversation"},
		},
		{
			PillarID:    pillars[3].ID,
			Title:       "Strength Treasure Hunt",
			Description: "Catalog your child's strengths together by hunting for evidence of them in everyday moments.",
			AgeGroup:    "all",
			Duration:    30,
			Materials:   datatypes.JSONSlice[string]{"Notebook or poster board", "Markers", "Stickers"},
			Steps: datatypes.JSONSlice[string]{
				"Make a list of character strengths together (kindness, curiosity, persistence...)",
				"Over the week, hunt for moments when your child shows each strength",
				"Record each sighting with a note or drawing",
				"Review the collection together and pick a favorite strength to use more",
			},
			LearningOutcomes: datatypes.JSONSlice[string]{
				"Builds vocabulary for naming personal strengths",
				"Grounds self-image in concrete evidence",
				"Encourages intentional use of strengths",
			},
			Tips: datatypes.JSONSlice[string]{
				"Let your child spot strengths in other family members too",
				"Connect each strength to a way it could help someone else",
			},
			Difficulty: "medium",
			Tags:       datatypes.JSONSlice[string]{"strengths", "self-awareness", "purpose"},
		},
		{
			PillarID:    pillars[4].ID,
			Title:       "Build a Worry Monster",
			Description: "Craft a friendly monster that eats written-down worries, giving anxious thoughts somewhere to go.",
			AgeGroup:    "elementary",
			Duration:    40,
			Materials:   datatypes.JSONSlice[string]{"Tissue box", "Construction paper", "Glue", "Googly eyes"},
			Steps: datatypes.JSONSlice[string]{
				"Decorate the box together as a friendly monster with a big mouth",
				"When a worry comes up, help your child write or draw it",
				"Feed the worry to the monster",
				"Once a week, empty the monster together and sort which worries came true",
			},
			LearningOutcomes: datatypes.JSONSlice[string]{
				"Externalizes anxious thoughts",
				"Teaches that most worries never happen",
				"Creates a predictable routine for handling fear",
			},
			Tips: datatypes.JSONSlice[string]{
				"Keep the monster somewhere your child can reach without asking",
				"Model the habit by feeding it a worry of your own",
			},
			Difficulty: "easy",
			Tags:       datatypes.JSONSlice[string]{"anxiety", "craft", "coping"},
		},
	}
}

// challengeSeed is a compact description of one daily challenge; the pillar
// is derived from the day (six consecutive days per pillar, in pillar order).
type challengeSeed struct {
	title             string
	description       string
	toddler           string
	elementary        string
	teen              string
	reflectionPrompts []string
}

func challengeSeeds(pillars []models.Pillar) []models.Challenge {
	seeds := []challengeSeed{
		// Days 1-6: Independence & Problem-Solving
		{
			title:             "Let Them Choose",
			description:       "Offer your child a real choice today and honor whatever they decide.",
			toddler:           "Offer two outfits or two snacks and let them pick without comment.",
			elementary:        "Let them plan one part of the day, like the after-school activity.",
			teen:              "Hand over a real decision with a budget or time limit attached.",
			reflectionPrompts: []string{"How did your child react to owning the decision?"},
		},
		{
			title:             "The Five-Minute Pause",
			description:       "When your child struggles with something today, wait five minutes before stepping in.",
			toddler:           "Count silently to ten before helping with a stuck toy or zipper.",
			elementary:        "Stay nearby but busy while they wrestle with homework or a project.",
			teen:              "Resist solving a logistics problem they can untangle themselves.",
			reflectionPrompts: []string{"What did they figure out without you?"},
		},
		{
			title:             "Ask, Don't Tell Day",
			description:       "Answer your child's questions with guiding questions instead of answers.",
			toddler:           `Try one "What could you try?" before showing them how.`,
			elementary:        "Keep a tally of how many questions you turned back to them.",
			teen:              "Ask what options they see before offering your opinion.",
			reflectionPrompts: []string{"Which guiding question worked best?"},
		},
		{
			title:             "One New Job",
			description:       "Hand over one household responsibility your child hasn't owned before.",
			toddler:           "Watering a plant or putting napkins on the table.",
			elementary:        "Packing their own school bag or feeding a pet.",
			teen:              "Cooking one meal or managing a family errand.",
			reflectionPrompts: []string{"Will this job stay theirs from now on?"},
		},
		{
			title:             "Problem of the Day",
			description:       "Pose one small, real problem and brainstorm solutions together before picking one.",
			toddler:           "How do we carry all these toys in one trip?",
			elementary:        "Plan how to fit homework and play before dinner.",
			teen:              "Work through a scheduling or money trade-off they care about.",
			reflectionPrompts: []string{"How many solutions did they generate before choosing?"},
		},
		{
			title:             "Fix It Yourself",
			description:       "When something goes wrong today, let your child lead the repair.",
			toddler:           "Spilled water gets wiped up by them, with you cheering.",
			elementary:        "A forgotten item means they make the plan for tomorrow.",
			teen:              "A broken commitment means they propose how to make it right.",
			reflectionPrompts: []string{"What did they learn from putting it right?"},
		},
		// Days 7-12: Growth Mindset & Resilience
		{
			title:             "The Power of Yet",
			description:       `Catch one "I can't" today and add "yet" to it together.`,
			toddler:           `Model it out loud: "You can't reach it... yet!"`,
			elementary:        `Make a "yet list" of things they're still learning.`,
			teen:              "Talk about a skill you both want but don't have yet.",
			reflectionPrompts: []string{"How did your child respond to the reframe?"},
		},
		{
			title:             "Mistake of the Day",
			description:       "At dinner, everyone shares one mistake they made today and what it taught them.",
			toddler:           "Keep it playful: share a silly mistake of your own first.",
			elementary:        "Ask what they would try differently next time.",
			teen:              "Share a real mistake from your work and its lesson.",
			reflectionPrompts: []string{"Did sharing mistakes get easier by the end?"},
		},
		{
			title:             "Effort Praise Only",
			description:       "For one day, praise only effort, strategy, and persistence, never talent or outcomes.",
			toddler:           `"You kept trying until the blocks stood up!"`,
			elementary:        `"You tried three different ways to solve that."`,
			teen:              "Acknowledge the hours behind a result, not the grade.",
			reflectionPrompts: []string{"Which effort-praise felt most natural?"},
		},
		{
			title:             "Try Something Hard",
			description:       "Pick something genuinely difficult and attempt it together, expecting to struggle.",
			toddler:           "A puzzle one level up from their usual.",
			elementary:        "A recipe, trick, or build that probably fails the first time.",
			teen:              "Learn the opening of a skill neither of you has tried.",
			reflectionPrompts: []string{"What did the struggle feel like for each of you?"},
		},
		{
			title:             "Brain Builder Talk",
			description:       "Talk about how the brain grows stronger with practice, like a muscle.",
			toddler:           "Flex your arms together: practice makes your brain strong too!",
			elementary:        "Draw a neuron and talk about connections forming with practice.",
			teen:              "Discuss neuroplasticity and what it means for their goals.",
			reflectionPrompts: []string{"What question did your child ask about the brain?"},
		},
		{
			title:             "Progress Snapshot",
			description:       "Compare something your child can do today with where they were a month or a year ago.",
			toddler:           "Look at old photos or videos of them learning to do it.",
			elementary:        "Re-read early journal pages or school work together.",
			teen:              "Have them list three abilities that grew this year.",
			reflectionPrompts: []string{"Which piece of progress surprised them most?"},
		},
		// Days 13-18: Social Confidence & Communication
		{
			title:             "The Greeting Challenge",
			description:       "Your child greets one person today with eye contact and a clear hello.",
			toddler:           "Wave and say hi to a neighbor or shopkeeper.",
			elementary:        "Greet an adult by name at school or in the neighborhood.",
			teen:              "Introduce themselves to someone new in a group or class.",
			reflectionPrompts: []string{"How did it feel before versus after the greeting?"},
		},
		{
			title:             "Question Practice",
			description:       "Your child asks someone one question about themselves today and listens to the answer.",
			toddler:           `Practice "What's your favorite color?" with a family member.`,
			elementary:        "Ask a classmate about their weekend or hobby.",
			teen:              "Ask a follow-up question that builds on the first answer.",
			reflectionPrompts: []string{"What did they learn about the other person?"},
		},
		{
			title:             "Listening Day",
			description:       "Practice active listening: knees pointed at the speaker, no interrupting, repeat back what you heard.",
			toddler:           "Play a repeat-after-me game with short stories.",
			elementary:        "Take turns retelling what the other person just said.",
			teen:              "Try a five-minute conversation where they only ask and summarize.",
			reflectionPrompts: []string{"When was staying quiet hardest?"},
		},
		{
			title:             "Kindness Mission",
			description:       "Plan and carry out one deliberate act of kindness for someone outside the family.",
			toddler:           "Draw a picture for a neighbor or share a snack at the park.",
			elementary:        "Write a thank-you note to a teacher or helper.",
			teen:              "Offer concrete help to a friend or volunteer an hour.",
			reflectionPrompts: []string{"How did the other person react?", "How did it feel?"},
		},
		{
			title:             "Speak for Yourself",
			description:       "Your child speaks for themselves in one everyday interaction you usually handle.",
			toddler:           "They tell the server or shopkeeper one word of their order.",
			elementary:        "They order their own food or ask a librarian for a book.",
			teen:              "They make a phone call, return an item, or ask a question at a counter.",
			reflectionPrompts: []string{"What would make them braver next time?"},
		},
		{
			title:             "Role-Play Rehearsal",
			description:       "Pick an upcoming social situation that worries your child and rehearse it together.",
			toddler:           "Act out a playdate handoff with stuffed animals.",
			elementary:        "Rehearse joining a game at recess, swapping roles.",
			teen:              "Run a mock interview or difficult conversation twice.",
			reflectionPrompts: []string{"What line or move will they take into the real moment?"},
		},
		// Days 19-24: Purpose & Strength Discovery
		{
			title:             "Strength Spotting",
			description:       "Name one specific strength you saw your child use today, with the evidence.",
			toddler:           `"You were so patient waiting for your turn on the slide."`,
			elementary:        "Name the strength and ask where else it could help them.",
			teen:              "Trade observations: they name one of your strengths too.",
			reflectionPrompts: []string{"Did your child accept or deflect the strength?"},
		},
		{
			title:             "Helper Role",
			description:       "Give your child a job today that genuinely uses one of their strengths.",
			toddler:           "The careful one carries the eggs; the loud one announces dinner.",
			elementary:        "The organizer plans the outing; the artist makes the card.",
			teen:              "The tech-savvy one fixes a real problem someone has.",
			reflectionPrompts: []string{"How did being needed change their energy?"},
		},
		{
			title:             "Interest Explorer",
			description:       "Spend twenty minutes following a brand-new interest your child picks.",
			toddler:           "Follow whatever catches their eye on a walk, as long as they want.",
			elementary:        "Watch a tutorial or read about a topic they chose.",
			teen:              "Let them teach themselves the first step of something new.",
			reflectionPrompts: []string{"Do they want to come back to it tomorrow?"},
		},
		{
			title:             "Teach Me Something",
			description:       "Your child teaches a family member something they know well.",
			toddler:           "They show you how to do their favorite puzzle or game.",
			elementary:        "They run a five-minute lesson with a demonstration.",
			teen:              "They teach a skill properly: steps, practice, feedback.",
			reflectionPrompts: []string{"What did being the expert feel like for them?"},
		},
		{
			title:             "Values Talk",
			description:       "Over a meal or a drive, ask what matters most to your child right now and just listen.",
			toddler:           "Ask which of today's moments was their favorite and why.",
			elementary:        "Ask what makes a good friend, and what makes them proud.",
			teen:              "Ask what issue they would fix in the world if they could.",
			reflectionPrompts: []string{"What did you hear that you didn't expect?"},
		},
		{
			title:             "Strength Evidence",
			description:       "Record today's proof of one strength in a journal or on the fridge where everyone can see it.",
			toddler:           "Draw the moment together and pin it up.",
			elementary:        "They write the entry themselves: strength, moment, evidence.",
			teen:              "Add it to a running list they can reread before hard days.",
			reflectionPrompts: []string{"How long is the evidence list getting?"},
		},
		// Days 25-30: Managing Fear & Anxiety
		{
			title:             "Name That Feeling",
			description:       "Throughout the day, help your child put precise words to their emotions.",
			toddler:           "Use faces and simple words: mad, sad, scared, excited.",
			elementary:        "Introduce finer words: disappointed, nervous, frustrated, relieved.",
			teen:              "Notice mixed feelings: proud and anxious can happen together.",
			reflectionPrompts: []string{"Which feeling word was new for your child?"},
		},
		{
			title:             "Worry Time",
			description:       "Hold a scheduled ten-minute worry session where every worry gets heard without judgment.",
			toddler:           "Let a stuffed animal listen to the worries too.",
			elementary:        "Write each worry down before talking about it.",
			teen:              "Sort worries as they come up and park them until the session.",
			reflectionPrompts: []string{"Did containing the worries to one time help the day?"},
		},
		{
			title:             "Breathing Practice",
			description:       "Learn one calming breath together and practice it three times today, before it's needed.",
			toddler:           "Blow up a pretend balloon belly, then let it hiss out slowly.",
			elementary:        "Square breathing: in four, hold four, out four, hold four.",
			teen:              "Try a longer exhale pattern and notice the body change.",
			reflectionPrompts: []string{"When could this breath help most this week?"},
		},
		{
			title:             "Brave Step",
			description:       "Take one small, chosen step toward something your child fears, with you alongside.",
			toddler:           "Pat the dog with your hand over theirs, or stand near the pool.",
			elementary:        "Do the scary thing's smallest version: raise a hand once in class.",
			teen:              "Send the message, sign up, or ask the question they've avoided.",
			reflectionPrompts: []string{"What did they notice after doing it versus dreading it?"},
		},
		{
			title:             "Worry Sorting",
			description:       "Sort today's worries into two piles: things we can control and things we can't.",
			toddler:           "Use two boxes and simple pictures for each worry.",
			elementary:        "Make an action plan for one controllable worry.",
			teen:              "Practice letting one uncontrollable worry go explicitly.",
			reflectionPrompts: []string{"Which pile was bigger, and what surprised you?"},
		},
		{
			title:             "Calm Kit",
			description:       "Build a kit of calming tools your child can reach for without help.",
			toddler:           "A soft toy, a picture book, and a family photo in a basket.",
			elementary:        "Add the breathing card, a fidget, and a list of helpers.",
			teen:              "A playlist, a grounding exercise, and a person to text.",
			reflectionPrompts: []string{"Where will the kit live so it's there when needed?"},
		},
	}

	challenges := make([]models.Challenge, 0, len(seeds))
	for i, s := range seeds {
		pillar := pillars[i/6]
		challenges = append(challenges, models.Challenge{
			Day:         i + 1,
			Title:       s.title,
			Description: s.description,
			PillarID:    pillar.ID,
			AgeAdaptations: datatypes.NewJSONType(map[string]models.ChallengeAdaptation{
				"toddler":    {Description: s.toddler},
				"elementary": {Description: s.elementary},
				"teen":       {Description: s.teen},
			}),
			ReflectionPrompts: datatypes.JSONSlice[string](s.reflectionPrompts),
		})
	}
	return challenges
}
