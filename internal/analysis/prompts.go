// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lumimood Labs

package analysis

// Truncation limits applied to journal text before it is embedded in a
// prompt. Scoring sees a longer prefix than feedback because feedback
// prompts carry instructions that compete for the context window.
const (
	scorePromptTextLimit    = 1500
	feedbackPromptTextLimit = 800
	ragPromptTextLimit      = 500
)

const scoreInstruction = `You are a mental-health analysis expert. Analyze the emotional state of the journal text below and respond with JSON in the form {"sentiment_score": float (-1.0 to 1.0, negative to positive), "stress_index": int (0 to 10, 0=calm 10=extreme stress)}. Respond with the JSON only, no other text.`

const scoreWithImagesInstruction = `You are a mental-health analysis expert. Analyze the emotional state of the journal text below together with the attached images; use what you can observe in the images to understand the writer's mood and situation. Respond with JSON in the form {"sentiment_score": float (-1.0 to 1.0, negative to positive), "stress_index": int (0 to 10, 0=calm 10=extreme stress)}. Respond with the JSON only, no other text.`

const personalizedFeedbackInstruction = `You are a warm, professional mental-health counselor. Based on the journal text below, write personalized feedback for its author.

Requirements:
1. Respond to the specific events, people, or feelings mentioned in the journal; never give generic advice
2. Address the author as "you" in a warm tone that never feels forced
3. Give 2-3 concrete suggestions or reflections tied to the journal content
4. Keep the reply to roughly 80-150 words
5. %s`

const imageFeedbackInstruction = `You are a warm, professional mental-health counselor. Based on the journal text below and the attached images, write personalized feedback for its author.

Requirements:
1. Respond to the specific events, people, or feelings mentioned in the journal, and also mention what you observe in the images
2. Address the author as "you" in a warm tone that never feels forced
3. Give 2-3 concrete suggestions or reflections tied to the journal content and images
4. Keep the reply to roughly 80-150 words`

// Tone hints interpolated into the personalized feedback prompt, keyed by
// sentiment band.
const (
	toneHintPositive = "The author's mood is leaning positive; affirm their positive experiences and encourage them to keep going."
	toneHintNeutral  = "The author's mood is steady or mildly mixed; keep them gentle company and offer practical everyday coping suggestions."
	toneHintLow      = "The author's mood is leaning low; show empathy and understanding, and offer concrete ways to regulate difficult emotions."
	toneHintVeryLow  = "The author is under significant strain or feeling very low; show deep empathy, offer professional coping guidance, and suggest seeking professional help if it continues."
)

const ragQueryInstruction = `A journal author wrote the following entry (sentiment score %.2f, leaning negative):
"%s"

Drawing on the psychology references below, respond to the specific events and feelings in the journal with a warm, empathetic tone and give 2-3 concrete suggestions to help the author.

References:
%s`

// Canned feedback templates for the local tier, bucketed by sentiment
// score. Chosen without any network dependency so a degraded deployment
// still answers with supportive copy.
const (
	cannedVeryPositive = "Your mood today looks really good! Keep up the positive outlook, and remember to rest when you need it.\n\nSuggestions:\n1. Write down what made today good so you can revisit it during harder stretches\n2. Share your good mood with the people around you; positive feelings are contagious"

	cannedPositive = "Your state today looks fairly steady, and that is a good thing.\n\nSuggestions:\n1. Try a small thing that makes you happy, like a walk, some music, or a favorite meal\n2. Keep a regular routine; a steady rhythm helps feelings stay steady too"

	cannedNeutral = "It looks like today had some ups and downs, which is completely normal.\n\nSuggestions:\n1. Take a few deep breaths and let yourself slow down\n2. If something is bothering you, try writing it out to untangle your thoughts\n3. Light exercise helps release pressure; even a short walk counts"

	cannedLow = "It looks like today has been heavy. That sounds hard. Remember that low stretches are temporary.\n\nSuggestions:\n1. Talk with a friend or family member you trust; being heard is itself a kind of healing\n2. Do something that relaxes you, like a hot drink, soft music, or a warm shower\n3. Remind yourself that you are already trying hard, and you do not need to be harsh with yourself"

	cannedVeryLow = "I notice you may be carrying a lot right now. What you are feeling makes sense and is understood.\n\nSuggestions:\n1. Allow yourself to feel these emotions; there is no need to suppress or deny them\n2. Try belly breathing: inhale for 4 seconds, hold for 4, exhale for 6, and repeat a few times\n3. If the distress continues, please consider talking to a professional counselor\n\nYou are not alone. If you need someone right now, call or text the 988 Suicide & Crisis Lifeline (24/7, free)"
)

// degradedFeedback is the static message used when no tier could run at
// all; the entry itself is still saved.
const degradedFeedback = "Analysis is temporarily unavailable, but your journal entry has been saved safely."
