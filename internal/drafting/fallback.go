package drafting

import (
	"fmt"

	"github.com/jonathan/hr-screener/internal/heuristics"
	"github.com/jonathan/hr-screener/internal/types"
)

// fallbackEmail renders the fixed template for (language, email type) with
// simple interpolation. Used whenever generation or parsing fails.
func fallbackEmail(lang, emailType, candidateName string, job *types.JobPosting) (subject, body string) {
	if lang == heuristics.LangMongolian {
		return fallbackEmailMN(emailType, candidateName, job)
	}
	return fallbackEmailEN(emailType, candidateName, job)
}

func fallbackEmailEN(emailType, candidateName string, job *types.JobPosting) (subject, body string) {
	switch emailType {
	case types.EmailInterviewInvitation:
		subject = fmt.Sprintf("Interview Invitation - %s Position", job.Title)
		body = fmt.Sprintf("Dear %s,\n\nThank you for your interest in the %s position at %s. We would like to invite you for an interview.\n\nWe will contact you shortly to schedule a convenient time.\n\nBest regards,\nHR Team",
			candidateName, job.Title, job.Company)
	case types.EmailRejection:
		subject = fmt.Sprintf("Update on Your Application - %s Position", job.Title)
		body = fmt.Sprintf("Dear %s,\n\nThank you for your interest in the %s position at %s. After careful consideration, we have decided to move forward with other candidates.\n\nWe encourage you to apply for future opportunities.\n\nBest regards,\nHR Team",
			candidateName, job.Title, job.Company)
	case types.EmailFollowUp:
		subject = fmt.Sprintf("Additional Information Needed - %s Position", job.Title)
		body = fmt.Sprintf("Dear %s,\n\nThank you for your application for the %s position. We would like to request some additional information to complete our review.\n\nPlease respond at your earliest convenience.\n\nBest regards,\nHR Team",
			candidateName, job.Title)
	default: // acknowledgment
		subject = fmt.Sprintf("Application Received - %s Position", job.Title)
		body = fmt.Sprintf("Dear %s,\n\nThank you for applying for the %s position at %s. We have received your application and will review it carefully.\n\nWe will be in touch regarding the next steps.\n\nBest regards,\nHR Team",
			candidateName, job.Title, job.Company)
	}
	return subject, body
}

func fallbackEmailMN(emailType, candidateName string, job *types.JobPosting) (subject, body string) {
	switch emailType {
	case types.EmailInterviewInvitation:
		subject = fmt.Sprintf("Ярилцлагын урилга - %s", job.Title)
		body = fmt.Sprintf("Эрхэм %s,\n\n%s компанийн %s ажлын байранд сонирхол илэрхийлсэнд баярлалаа. Бид таныг ярилцлагад урьж байна.\n\nТохиромжтой цагийг товлохоор тантай удахгүй холбогдох болно.\n\nХүндэтгэсэн,\nХүний нөөцийн баг",
			candidateName, job.Company, job.Title)
	case types.EmailRejection:
		subject = fmt.Sprintf("Өргөдлийн хариу - %s", job.Title)
		body = fmt.Sprintf("Эрхэм %s,\n\n%s компанийн %s ажлын байранд сонирхол илэрхийлсэнд баярлалаа. Нарийвчлан хянасны үндсэн дээр бид бусад нэр дэвшигчтэй үргэлжлүүлэхээр шийдвэрлэлээ.\n\nЦаашид гарах боломжуудад дахин өргөдөл гаргахыг урьж байна.\n\nХүндэтгэсэн,\nХүний нөөцийн баг",
			candidateName, job.Company, job.Title)
	case types.EmailFollowUp:
		subject = fmt.Sprintf("Нэмэлт мэдээлэл шаардлагатай - %s", job.Title)
		body = fmt.Sprintf("Эрхэм %s,\n\n%s ажлын байрны өргөдөлд тань баярлалаа. Хянан үзэх ажиллагааг дуусгахын тулд нэмэлт мэдээлэл хүсч байна.\n\nБоломжит хугацаандаа хариу өгнө үү.\n\nХүндэтгэсэн,\nХүний нөөцийн баг",
			candidateName, job.Title)
	default: // acknowledgment
		subject = fmt.Sprintf("Өргөдөл хүлээн авлаа - %s", job.Title)
		body = fmt.Sprintf("Эрхэм %s,\n\n%s компанийн %s ажлын байранд өргөдөл гаргасанд баярлалаа. Бид таны өргөдлийг хүлээн авч, нягт хянан үзэх болно.\n\nДараагийн алхмуудын талаар бид тантай холбогдоно.\n\nХүндэтгэсэн,\nХүний нөөцийн баг",
			candidateName, job.Company, job.Title)
	}
	return subject, body
}
