package cms

// Seed data used when the durable store has no prior entry for a collection.
// Values mirror the launch copy of the ModeGarage site.

// SeedContent returns the default per-language marketing copy.
func SeedContent() map[Language]SiteContent {
	return map[Language]SiteContent{
		LanguageKorean: {
			Hero: HeroContent{
				Title:    "프리미엄 정비의 기준",
				Subtitle: "수입차 정비가 막막하신가요? 모드개러지가 투명하고 완벽한 서비스로 소중한 차를 관리해 드립니다.",
				CTA:      "지금 바로 예약하기",
			},
			About: AboutContent{
				Title:       "믿고 맡기는 모드개러지",
				Description: "우리는 단순히 차를 고치는 것을 넘어, 고객님의 안전한 드라이빙을 설계합니다.",
			},
			Services: []Service{
				{ID: "1", Title: "엔진오일 & 소모품", Description: "기본 점검부터 엔진오일, 필터류 교체까지 가장 기초적이고 중요한 관리입니다.", Icon: "Fuel"},
				{ID: "2", Title: "엔진 & 미션 정밀수정", Description: "소음, 진동, 경고등 점검 등 전문 장비가 필요한 고난도 수리를 진행합니다.", Icon: "Wrench"},
				{ID: "3", Title: "브레이크 & 서스펜션", Description: "생명과 직결된 제동 장치와 승차감을 결정짓는 하체 부품을 꼼꼼히 점검합니다.", Icon: "Shield"},
				{ID: "4", Title: "슈퍼카 퍼포먼스 튜닝", Description: "당신의 차를 더 강력하게 만드는 퍼포먼스 업그레이드.", Icon: "Zap"},
				{ID: "5", Title: "차량 랩핑 & 외장관리", Description: "색상 변경부터 PPF 보호 필름까지 차량의 가치를 높이는 프리미엄 케어.", Icon: "Palette"},
				{ID: "6", Title: "커스텀 로고 디자인", Description: "모드개러지 감성의 유니크한 로고 디자인으로 나만의 차를 완성합니다.", Icon: "Camera"},
			},
		},
		LanguageEnglish: {
			Hero: HeroContent{
				Title:    "Premium Service Standard",
				Subtitle: "ModeGarage provides transparent and perfect service for your luxury car.",
				CTA:      "Book Now",
			},
			About: AboutContent{
				Title:       "Trusted ModeGarage",
				Description: "We design your safe driving experience beyond simple repairs.",
			},
			Services: []Service{
				{ID: "1", Title: "Oil & Consumables", Description: "Essential care from basic inspection to oil and filter replacement.", Icon: "Fuel"},
				{ID: "2", Title: "Engine & Mission", Description: "High-difficulty repairs using expert diagnostic tools.", Icon: "Wrench"},
				{ID: "3", Title: "Brakes & Suspension", Description: "Meticulous check on braking systems for your safety.", Icon: "Shield"},
				{ID: "4", Title: "Performance Tuning", Description: "Make your car even more powerful with our tuning services.", Icon: "Zap"},
				{ID: "5", Title: "Wrapping & Care", Description: "Premium exterior care from color changes to PPF film.", Icon: "Palette"},
				{ID: "6", Title: "Custom Logo Design", Description: "Complete your unique car with our signature logo design.", Icon: "Camera"},
			},
		},
	}
}

// SeedPosts returns the default blog posts.
func SeedPosts() []BlogPost {
	return []BlogPost{
		{
			ID:          "1",
			Title:       "람보르기니 우루스 엔진오일 교환 작업기",
			Excerpt:     "정기 점검의 중요성! 모드개러지에서 진행된 우루스 케어 과정을 확인하세요.",
			Content:     "내용 생략...",
			Author:      "정비팀장",
			Date:        "2024-05-20",
			Image:       "https://images.unsplash.com/photo-1544636331-e26879cd4d9b?q=80&w=1200",
			Category:    "작업갤러리",
			Slug:        "urus-oil-change",
			SEOKeywords: []string{"람보르기니", "정비"},
		},
		{
			ID:          "2",
			Title:       "포르쉐 타이칸 전체 PPF 시공 완료",
			Excerpt:     "스크래치 걱정 끝! 완벽한 핏감의 PPF 시공 결과물을 공개합니다.",
			Content:     "내용 생략...",
			Author:      "디자인팀",
			Date:        "2024-05-18",
			Image:       "https://images.unsplash.com/photo-1614162692292-7ac56d7f7f1e?q=80&w=1200",
			Category:    "외장관리",
			Slug:        "taycan-ppf",
			SEOKeywords: []string{"포르쉐", "PPF"},
		},
	}
}

// SeedSettings returns the default branding and SEO record.
func SeedSettings() SiteSettings {
	return SiteSettings{
		PrimaryColor:   "#ff0000",
		AccentColor:    "#000000",
		FontFamily:     "Inter",
		SEOTitle:       "모드개러지 | 프리미엄 수입차 정비의 모든 것",
		SEODescription: "수입차 정비, 오일교환, 튜닝까지 가장 투명하게 도와드립니다.",
		Socials: SocialLinks{
			Instagram: "https://instagram.com/modegarage_",
			YouTube:   "https://youtube.com/@mode1554",
			Facebook:  "#",
		},
	}
}
