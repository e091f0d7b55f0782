package advice

import "strings"

type rule struct {
	topic    Topic
	keywords []string
}

// rules are checked in order; the first topic with a keyword hit wins.
var rules = []rule{
	{TopicProfessional, []string{"work", "interview", "office", "professional", "business"}},
	{TopicCasual, []string{"casual", "weekend", "relaxed", "everyday"}},
	{TopicFormalEvent, []string{"wedding", "formal", "ceremony", "special event"}},
	{TopicEvening, []string{"party", "evening", "night out", "date", "club"}},
	{TopicHair, []string{"hair", "hairstyle", "haircut"}},
	{TopicMakeup, []string{"makeup", "beauty", "cosmetics"}},
	{TopicColor, []string{"color", "colour", "match", "coordinate"}},
}

// Classify picks the topic for a free-text message using case-insensitive
// substring matching. A message with no keyword hit is TopicDefault.
func Classify(message string) Topic {
	lower := strings.ToLower(message)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.topic
			}
		}
	}
	return TopicDefault
}

// Keywords returns a copy of the trigger keywords of a topic.
func Keywords(topic Topic) []string {
	for _, r := range rules {
		if r.topic == topic {
			return append([]string(nil), r.keywords...)
		}
	}
	return nil
}
