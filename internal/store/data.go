package store

var currentUser = User{
	ID:           "EMP002",
	Name:         "함보라",
	Role:         "EMPLOYEE",
	Department:   "디자인팀",
	JoinDate:     "2023-01-15",
	LeaveBalance: 12.5,
	Position:     "UI/UX Designer",
	Email:        "bora.ham@techcorp.com",
}

var mockNotices = []Notice{
	{ID: 1, Title: "[공지] 2024년 연말정산 일정 안내", Date: "2023.12.01", Important: true},
	{ID: 2, Title: "[행사] 12월 디자인팀 타운홀 미팅", Date: "2023.12.05", Important: false},
	{ID: 3, Title: "[HR] 사내 독감 예방접종 신청", Date: "2023.11.28", Important: false},
	{ID: 4, Title: "[시스템] 그룹웨어 서버 점검 안내", Date: "2023.11.25", Important: false},
}

var mockPolicies = []Policy{
	{
		ID:       "leave-01",
		Title:    "연차 휴가 규정",
		Category: "근태/휴가",
		Summary:  "연차 발생 기준 및 사용 절차에 대한 안내",
		Content: `
# 연차 휴가 관리 규정

### 제1조 (목적)
본 규정은 사원의 휴가 사용을 보장하고, 일과 삶의 균형을 유지하기 위함이다.

### 제2조 (연차 발생)
1. **1년 이상 근속자**: 1년간 80% 이상 출근한 근로자에게 15일의 유급휴가를 부여한다.
2. **1년 미만 근속자**: 1개월 개근 시 1일의 유급휴가를 부여한다.
3. **가산 휴가**: 3년 이상 근속한 경우, 매 2년마다 1일을 가산한다 (최대 25일).

### 제3조 (사용 및 절차)
1. **시기 지정**: 회사는 근로기준법 제61조에 따라 연차 사용을 촉진할 수 있다.
2. **반차 사용**:
   - 오전 반차: 09:00 ~ 13:00 (4시간)
   - 오후 반차: 14:00 ~ 18:00 (4시간)
3. **결재**: 휴가 예정일 3일 전까지 그룹웨어를 통해 부서장의 승인을 득해야 한다.
    `,
		LastUpdated: "2024-01-01",
	},
	{
		ID:       "expense-01",
		Title:    "경비 처리 및 법인카드",
		Category: "재무/회계",
		Summary:  "법인카드 사용 한도 및 경조사비 청구 기준",
		Content: `
# 경비 지출 관리 규정

### 제1조 (법인카드 사용 원칙)
1. 업무와 직접적인 관련이 있는 지출에 한하여 사용 가능하다.
2. **제한 사항**:
   - 심야 시간 (22:00 ~ 06:00) 사용 금지
   - 휴일 및 주말 사용 금지 (사전 품의 시 예외)
   - 개인적인 물품 구매 절대 금지

### 제2조 (식대 지원)
| 구분 | 지원 금액 | 비고 |
|---|---|---|
| **야근 식대** | 12,000원 | 20:00 이후 퇴근 시 |
| **팀 회식비** | 30,000원/인 | 월 1회, 부서장 승인 |
| **점심 식대** | 월 200,000원 | 급여 포함 지급 |

### 제3조 (경조사비)
- **본인 결혼**: 1,000,000원 + 화환 + 휴가 5일
- **자녀 출산**: 300,000원 + 과일바구니
- **부모 칠순**: 200,000원 지원
    `,
		LastUpdated: "2023-11-15",
	},
	{
		ID:       "benefit-01",
		Title:    "복리후생 제도",
		Category: "복지",
		Summary:  "건강검진, 자기개발비, 생일 선물 등",
		Content: `
# 임직원 복리후생 제도

### 제1조 (건강관리)
1. **종합 건강검진**: 매년 1회 KMI, 녹십자 등 지정 병원에서 무료 검진 (본인 및 배우자).
2. **의료비 지원**: 본인 부담금 10만원 초과 시 실비 지원 (연간 100만원 한도).

### 제2조 (자기개발)
- **교육비**: 직무 관련 교육, 도서 구입비 연간 120만원 지원.
- **체력단련**: 헬스, 요가 등 운동 비용 월 5만원 지원.

### 제3조 (기념일)
- **생일**: 생일 해당 월에 신세계 상품권 5만원 지급 및 조기 퇴근(4시).
- **명절**: 설/추석 귀향비 각 20만원 지급.
    `,
		LastUpdated: "2024-02-20",
	},
}

var employees = []Employee{
	{Name: "이영희", Role: "인사팀장", Department: "HR팀", Phone: "02-123-4567", Location: "10층 A구역"},
	{Name: "박지성", Role: "IT팀장", Department: "IT지원팀", Phone: "02-123-9999", Location: "11층 B구역"},
	{Name: "최법카", Role: "총무담당", Department: "경영지원팀", Phone: "02-123-8888", Location: "10층 C구역"},
}

var mockAnalytics = []AnalyticsEntry{
	{Category: "연차/휴가", Count: 120},
	{Category: "급여/정산", Count: 85},
	{Category: "복리후생", Count: 60},
	{Category: "증명서발급", Count: 40},
	{Category: "기타", Count: 25},
}
