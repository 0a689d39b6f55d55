// Package survey holds the static My Voice questionnaire.
package survey

import "myvoice/internal/model"

// Version tags every persisted response with the questionnaire revision it
// answered. Only the 2026 question set is in use; a future revision gets a
// new tag instead of silently replacing the texts.
const Version = "2026.1"

// Title is the respondent-facing survey name.
const Title = "2026 My Voice Employee Survey"

// Questions referenced by name in the report overview.
const (
	QuestionRetention = "Q1_Retention_Transformation"
	QuestionWorkload  = "Q2_Workload_Stress"
)

// Catalog builds the fixed ordered question list. It returns a fresh value
// on every call; callers treat it as immutable injected configuration and
// load it once at startup.
func Catalog() model.Questionnaire {
	return model.Questionnaire{
		Version: Version,
		Title:   Title,
		Questions: []model.Question{
			{
				ID:     QuestionRetention,
				Prompt: "How are you feeling about all these changes happening at the bank? Are they making you want to stay or think about leaving?",
				Choices: []model.Choice{
					{Code: model.ChoiceA, Text: "Pretty excited about it! The changes make sense, I know where I fit, and I can see some good opportunities coming my way"},
					{Code: model.ChoiceB, Text: "Cautiously optimistic - I get the direction we're going, but I'd love more clarity on timelines and what exactly my role will look like"},
					{Code: model.ChoiceC, Text: "A bit worried but still hopeful - Concerned about job security and the extra workload, but I think it'll work out if we get better communication"},
					{Code: model.ChoiceD, Text: "Honestly considering other options - The uncertainty and impact on my work-life balance is really making me think about looking elsewhere"},
				},
			},
			{
				ID:     QuestionWorkload,
				Prompt: "Let's talk about your workload - are you managing okay with everything on your plate right now?",
				Choices: []model.Choice{
					{Code: model.ChoiceA, Text: "It's all good! My workload feels reasonable, deadlines are doable, and my manager has my back"},
					{Code: model.ChoiceB, Text: "It's pretty intense but I'm handling it - could use some flexibility on deadlines when things get crazy busy though"},
					{Code: model.ChoiceC, Text: "I'm struggling to keep up - working long hours regularly, missing deadlines, and could really use some help with prioritizing"},
					{Code: model.ChoiceD, Text: "It's honestly unsustainable - the pressure is affecting my health and personal life, something needs to change ASAP"},
				},
			},
			{
				ID:     "Q3_Decision_Making",
				Prompt: "How's the decision-making around here? Do things move at a reasonable pace or are you stuck waiting for answers a lot?",
				Choices: []model.Choice{
					{Code: model.ChoiceA, Text: "Pretty smooth actually - decisions happen in reasonable time and we usually understand the 'why' behind them"},
					{Code: model.ChoiceB, Text: "Sometimes we wait longer than we'd like, but we eventually get there - more regular updates would be nice"},
					{Code: model.ChoiceC, Text: "Lots of waiting around - weeks for simple decisions, causing delays and having to redo work because priorities changed"},
					{Code: model.ChoiceD, Text: "It's a real problem - the delays are causing major issues, missed opportunities, and everyone's getting frustrated"},
				},
			},
			{
				ID:     "Q4_Input_Involvement",
				Prompt: "When changes are happening that affect your work, do you feel like anyone actually listens to what you have to say?",
				Choices: []model.Choice{
					{Code: model.ChoiceA, Text: "Absolutely! I'm regularly asked for input and can see my suggestions actually being used in the final decisions"},
					{Code: model.ChoiceB, Text: "Sometimes they ask, but I'm not always sure what happens with my feedback - would love to know how it's being used"},
					{Code: model.ChoiceC, Text: "Rarely get asked, and when I am, it feels like the decision was already made anyway"},
					{Code: model.ChoiceD, Text: "Never really consulted - just get told about changes after they're decided, which is frustrating given my experience"},
				},
			},
			{
				ID:     "Q5_Performance_Recognition",
				Prompt: "Do you feel like your hard work gets recognized fairly, especially compared to your teammates?",
				Choices: []model.Choice{
					{Code: model.ChoiceA, Text: "Yes, the process feels fair and transparent - my contributions get the recognition they deserve"},
					{Code: model.ChoiceB, Text: "Mostly fair, though I'd appreciate more specific feedback and clearer criteria for what gets recognized"},
					{Code: model.ChoiceC, Text: "I notice some inconsistency - similar work seems to get different levels of recognition depending on who did it"},
					{Code: model.ChoiceD, Text: "Not really - I feel undervalued compared to my peers, and the whole process lacks transparency"},
				},
			},
			{
				ID:     "Q6_Personal_Growth",
				Prompt: "Is your manager actually helping you grow in your career, especially with all the changes happening?",
				Choices: []model.Choice{
					{Code: model.ChoiceA, Text: "Definitely! We regularly talk about my development, and they're actively helping me navigate my career path"},
					{Code: model.ChoiceB, Text: "We have some development conversations, but they could be more frequent and focused on specific skills I need"},
					{Code: model.ChoiceC, Text: "Not really much happening - our development discussions are pretty rare and don't go very deep"},
					{Code: model.ChoiceD, Text: "Honestly, no - we hardly ever talk about my growth, and it feels like development has taken a backseat to everything else"},
				},
			},
			{
				ID:     "Q7_Tools_Resources",
				Prompt: "Do you have what you need to do your job well, or are you constantly working around missing tools and resources?",
				Choices: []model.Choice{
					{Code: model.ChoiceA, Text: "I'm all set! Have everything I need to do my job effectively, plus good tech support when I need it"},
					{Code: model.ChoiceB, Text: "Pretty well equipped, but there are some tools or upgrades that would definitely make my work easier and better"},
					{Code: model.ChoiceC, Text: "Missing quite a few things I need - causes delays and I'm constantly finding workarounds, which slows me down"},
					{Code: model.ChoiceD, Text: "It's a real struggle - lacking basic tools and resources that seriously impact my ability to do quality work"},
				},
			},
			{
				ID:     "Q8_Follow_up_Accountability",
				Prompt: "Thinking about what management promised after last year's survey - did they actually follow through on those commitments?",
				Choices: []model.Choice{
					{Code: model.ChoiceA, Text: "They really delivered! Most of what they promised actually happened, I can see real improvements, and I trust the process"},
					{Code: model.ChoiceB, Text: "Mixed bag - some things were done well, others not so much, but I still generally believe they're trying"},
					{Code: model.ChoiceC, Text: "Not much changed despite all the promises - starting to wonder if this survey actually leads to anything"},
					{Code: model.ChoiceD, Text: "Pretty disappointed - most commitments weren't delivered as promised, and honestly, I'm losing faith in the whole process"},
				},
			},
			{
				ID:     "Q9_Work_Environment",
				Prompt: "What would make the biggest difference in making this a better place to work day-to-day?",
				Choices: []model.Choice{
					{Code: model.ChoiceA, Text: "It's already pretty good! The culture and team dynamics are supportive - just minor tweaks needed"},
					{Code: model.ChoiceB, Text: "Better collaboration would help - we need improved communication between teams and more inclusive decision-making"},
					{Code: model.ChoiceC, Text: "Some serious culture issues to fix - too much blame, office politics, or people not feeling safe to speak up"},
					{Code: model.ChoiceD, Text: "Major problems here - the culture is really toxic and affecting everyone's morale and well-being"},
				},
			},
			{
				ID:     "Q10_Open_Communication",
				Prompt: "Can you speak up when you disagree with something or have concerns, or do you keep quiet to avoid trouble?",
				Choices: []model.Choice{
					{Code: model.ChoiceA, Text: "I feel totally comfortable speaking up about anything - leadership actually encourages different viewpoints"},
					{Code: model.ChoiceB, Text: "Usually comfortable, but sometimes I hold back on sensitive topics - a bit more encouragement would help"},
					{Code: model.ChoiceC, Text: "Depends on the topic and who I'm talking to - wish it felt more consistently safe to share honest opinions"},
					{Code: model.ChoiceD, Text: "I keep quiet most of the time - worried about negative consequences or getting in trouble for speaking up"},
				},
			},
			{
				ID:     "Q11_AI_Future_Readiness",
				Prompt: "How do you feel about all this AI stuff coming into our work? Excited, nervous, or somewhere in between?",
				Choices: []model.Choice{
					{Code: model.ChoiceA, Text: "Bring it on! I'm excited about the possibilities and feel ready to adapt to whatever tech changes come our way"},
					{Code: model.ChoiceB, Text: "Interested and see the potential, but I'll definitely need some training and support to feel confident with it"},
					{Code: model.ChoiceC, Text: "A bit nervous but willing to learn - just need comprehensive training and ongoing support to keep up"},
					{Code: model.ChoiceD, Text: "Pretty worried about being left behind - concerned these changes will make my current skills irrelevant"},
				},
			},
			{
				ID:     "Q12_Most_Important_Action",
				Prompt: "If you could wave a magic wand and change one thing to make your work experience better, what would it be?",
				Choices: []model.Choice{
					{Code: model.ChoiceA, Text: "Better communication - more transparency about what's happening, why decisions are made, and how changes affect me personally"},
					{Code: model.ChoiceB, Text: "Fix the work-life balance - realistic workloads, better time management, and actual support for managing stress"},
					{Code: model.ChoiceC, Text: "Invest in our people - more focus on training, career development, and helping us navigate all these changes"},
					{Code: model.ChoiceD, Text: "Actually listen to us - take real action on employee feedback and consistently follow through on promises"},
				},
			},
		},
	}
}
