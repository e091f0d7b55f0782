package advice

// Topic is one bucket of the rule-based fallback responder.
type Topic string

const (
	TopicProfessional Topic = "professional"
	TopicCasual       Topic = "casual"
	TopicFormalEvent  Topic = "formal_event"
	TopicEvening      Topic = "evening"
	TopicHair         Topic = "hair"
	TopicMakeup       Topic = "makeup"
	TopicColor        Topic = "color"
	TopicDefault      Topic = "default"
)

// Topics returns every topic in classification order, default last.
func Topics() []Topic {
	topics := make([]Topic, 0, len(rules)+1)
	for _, r := range rules {
		topics = append(topics, r.topic)
	}
	return append(topics, TopicDefault)
}

// Template returns the advice document for a topic. Unknown topics get the
// default document.
func Template(topic Topic) string {
	if doc, ok := templates[topic]; ok {
		return doc
	}
	return templates[TopicDefault]
}

var templates = map[Topic]string{
	TopicProfessional: `💼 **Professional Styling Advice:**

**Outfit Options:**
1. Classic navy blazer with tailored trousers and crisp white shirt
2. Sheath dress in black or navy with structured jacket
3. Button-down shirt with pencil skirt and closed-toe heels
4. Professional pantsuit in neutral colors (navy, charcoal, black)

**Footwear:**
• Closed-toe pumps with 2-3 inch heel
• Oxford shoes for a modern touch
• Low block heels for comfort
• Professional loafers

**Accessories:**
• Simple watch (leather or metal band)
• Minimal jewelry (stud earrings, simple necklace)
• Structured handbag or briefcase
• Classic leather belt

**Makeup:**
• Natural, polished look
• Neutral eyeshadow palette
• Professional lipstick (nude, berry, or classic red)
• Well-groomed eyebrows

**Pro Tips:** Keep it conservative, ensure perfect fit, and remember - you want to be remembered for your skills, not your outfit!`,

	TopicCasual: `😎 **Casual Styling Guide:**

**Outfit Ideas:**
1. High-waisted jeans with cozy sweater and white sneakers
2. Midi dress with denim jacket and ankle boots
3. Casual blazer with jeans and basic tee
4. Comfortable joggers with stylish hoodie and sneakers

**Footwear:**
• White leather sneakers (versatile and trendy)
• Ankle boots for added style
• Slip-on shoes for easy wear
• Canvas shoes for summer

**Accessories:**
• Crossbody bag for hands-free convenience
• Baseball cap or beanie
• Layered necklaces
• Casual watch or fitness tracker

**Makeup:**
• Fresh, natural look
• Tinted moisturizer instead of foundation
• Lip balm or tinted lip gloss
• Just mascara for defined eyes

**Style Tips:** Comfort is key! Mix textures, don't be afraid of patterns, and remember casual doesn't mean sloppy!`,

	TopicFormalEvent: `💒 **Wedding & Special Event Styling:**

**Outfit Options:**
1. Elegant midi dress in pastels (avoid white/ivory/cream)
2. Sophisticated jumpsuit with heels
3. Floral dress with cardigan for outdoor weddings
4. Classic A-line dress with modest neckline

**Footwear:**
• Block heels for stability
• Wedges for outdoor/garden weddings
• Elegant flats if you'll be standing long
• Strappy sandals for evening events

**Accessories:**
• Statement earrings
• Small clutch purse
• Delicate bracelet
• Hair accessories (if appropriate)

**Makeup:**
• Romantic, soft glam look
• Rosy cheeks for a healthy glow
• Neutral to pink lips
• Defined but not dramatic eyes

**Event Tips:** Consider the venue (indoor/outdoor), bring a wrap for air conditioning, and choose shoes you can dance in!`,

	TopicEvening: `🎉 **Party & Evening Styling:**

**Outfit Ideas:**
1. Little black dress with statement accessories
2. Sequined or metallic top with black trousers
3. Silk camisole with high-waisted pants
4. Bodycon dress with blazer for sophistication

**Footwear:**
• High heels for glamour
• Strappy sandals
• Pointed-toe pumps
• Stylish ankle boots

**Accessories:**
• Bold jewelry (statement necklace or earrings)
• Evening clutch
• Statement belt to define waist
• Elegant scarf or wrap

**Makeup:**
• Bold smoky eyes or dramatic lashes
• Red or berry lips for impact
• Highlighted cheekbones
• Don't forget setting spray!

**Party Tips:** This is your time to shine! Don't be afraid of bold choices, but ensure you can move comfortably.`,

	TopicHair: `💇‍♀️ **Hair Styling Guide:**

**For Long Hair:**
• Beach waves for effortless elegance
• Sleek straight hair for professional look
• High ponytail for active days
• Braided crown for special occasions

**For Medium Hair:**
• Lob (long bob) with subtle layers
• Textured bob for modern style
• Half-up half-down for versatility
• Side-swept bangs for face framing

**For Short Hair:**
• Pixie cut with texturizing products
• Textured crop for edgy look
• Side-swept styling
• Add headbands or clips for variety

**For Curly Hair:**
• Define curls with leave-in cream
• Twist-outs for stretched curls
• Protective styles for hair health
• Embrace your natural texture!

**Pro Tips:** Always use heat protectant, consider your face shape, get regular trims, and don't fight your natural texture!`,

	TopicMakeup: `💄 **Makeup & Beauty Guide:**

**Everyday Makeup:**
• Tinted moisturizer or light foundation
• Concealer for under eyes and blemishes
• Cream blush for natural flush
• Mascara and lip balm

**Work Makeup:**
• Medium coverage foundation
• Neutral eyeshadow palette
• Defined brows
• Professional lipstick

**Evening Makeup:**
• Full coverage foundation
• Smoky eyes or bold lips (not both)
• Contouring and highlighting
• Setting spray for longevity

**Makeup Tips:**
• Match foundation to your neck, not your hand
• Blend eyeshadow upward and outward
• Use lip liner to make lipstick last longer
• Clean brushes regularly for better application

**Skincare First:** Always start with clean, moisturized skin for best makeup application!`,

	TopicColor: `🎨 **Color Coordination Guide:**

**Color Combinations:**
• **Complementary:** Blue & Orange, Red & Green, Purple & Yellow
• **Analogous:** Colors next to each other on color wheel
• **Monochromatic:** Different shades of same color
• **Neutral Base:** Black, white, beige, navy - pair with any accent color

**Skin Tone Tips:**
• **Cool Undertones:** Jewel tones (emerald, sapphire, ruby)
• **Warm Undertones:** Earth tones (rust, gold, olive)
• **Neutral Undertones:** Most colors work well

**Quick Rules:**
• When in doubt, add one pop of color to neutrals
• Limit yourself to 3 colors maximum
• Use the 60-30-10 rule: 60% dominant color, 30% secondary, 10% accent

**Safe Combinations:**
• Navy + white + gold accents
• Black + cream + one bright color
• Beige + brown + metallics`,

	TopicDefault: `✨ **Welcome to Your Fashion Consultation!**

I'm here to help you with all aspects of fashion and style! I can assist you with:

👗 **Styling Services:**
• Complete outfit coordination
• Occasion-specific dressing
• Color matching and coordination
• Body type specific advice

💄 **Beauty & Hair:**
• Makeup tutorials and tips
• Hairstyle recommendations
• Skincare advice
• Beauty product suggestions

💎 **Accessories:**
• Jewelry coordination
• Bag and shoe pairing
• Seasonal accessories
• Investment piece advice

**What would you like help with today?** You can ask me about:
- Outfits for specific occasions
- Hair styling ideas
- Makeup looks
- Color coordination
- Accessory advice
- Or any other fashion question!

I'm here to help you look and feel your best! 💫`,
}
