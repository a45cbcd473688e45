// Package view рендерит ответы бота. Ответы уходят с ParseMode HTML, поэтому
// весь пользовательский ввод экранируется.
package view

import (
	"fmt"
	"html"
	"strings"

	"plate_appraiser/internal/domain/entity"
)

const (
	StartMessage = `🚗 <b>车牌估值助手</b>

/plate &lt;车牌&gt; — 车牌号估值，例如 <code>/plate 京A88888</code>
/tail &lt;号码&gt; — 手机尾号评估，例如 <code>/tail 13800001314</code>
/region &lt;关键词&gt; — 查询省份简称，例如 <code>/region 广东</code>

也可以直接发送车牌号或手机号。`

	PlateMissingArgument  = "请在命令后输入车牌号，例如 /plate 京A88888"
	TailMissingArgument   = "请在命令后输入手机号或尾号，例如 /tail 13800001314"
	RegionMissingArgument = "请在命令后输入省份名称或简称，例如 /region 广东"
	RegionNotFound        = "未找到匹配的省份"
	InternalError         = "⚠️ 估值服务暂时不可用，请稍后再试"
	UnknownInput          = "无法识别的输入，发送 /start 查看帮助"
)

func stars(n int) string {
	return strings.Repeat("⭐", n)
}

func PlateReport(r entity.PlateReport) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "🚗 <b>%s</b>", html.EscapeString(r.Plate))
	if r.Location != "" {
		fmt.Fprintf(&sb, "（%s）", html.EscapeString(r.Location))
	}
	sb.WriteString("\n\n")

	fmt.Fprintf(&sb, "💰 <b>估值：</b>¥%s\n", groupDigits(r.Value))
	fmt.Fprintf(&sb, "🏅 <b>等级：</b>%s %s\n", r.Level, stars(r.Stars))
	fmt.Fprintf(&sb, "💬 %s\n", html.EscapeString(r.Comment))

	if len(r.Factors) > 0 {
		sb.WriteString("\n<b>价值因素：</b>\n")
		for _, f := range r.Factors {
			fmt.Fprintf(&sb, "• %s\n", html.EscapeString(f))
		}
	}

	return strings.TrimRight(sb.String(), "\n")
}

func TailValuation(v entity.TailValuation) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "📱 尾号 <b>%s</b>\n\n", html.EscapeString(v.TailNumber))
	fmt.Fprintf(&sb, "🏅 <b>等级：</b>%s（%s）\n", v.Grade, v.GradeInfo.Name)
	fmt.Fprintf(&sb, "🔢 <b>规律：</b>%s\n", html.EscapeString(v.Description))
	fmt.Fprintf(&sb, "💰 <b>估价：</b>¥%s（区间 ¥%s – ¥%s）\n",
		groupDigits(v.Price), groupDigits(v.PriceRange[0]), groupDigits(v.PriceRange[1]))

	if v.Suggestion != "" {
		fmt.Fprintf(&sb, "\n💡 %s", html.EscapeString(v.Suggestion))
	}
	if v.Blessing != "" {
		fmt.Fprintf(&sb, "\n🙏 %s", html.EscapeString(v.Blessing))
	}

	return strings.TrimRight(sb.String(), "\n")
}

func Regions(matches []entity.ProvinceMatch) string {
	if len(matches) == 0 {
		return RegionNotFound
	}

	var sb strings.Builder

	sb.WriteString("🗺 <b>省份简称</b>\n\n")
	for _, m := range matches {
		fmt.Fprintf(&sb, "<b>%s</b> — %s\n", m.Code, m.FullName)
	}

	return strings.TrimRight(sb.String(), "\n")
}

func RareAlert(r entity.PlateReport) string {
	return "🔥 <b>发现极品车牌！</b>\n\n" + PlateReport(r)
}

// Rejected показывается, когда сервис отклонил ввод; description берётся из
// ошибки и может быть пустым.
func Rejected(description string) string {
	if description == "" {
		return "❌ 输入格式不正确"
	}

	return "❌ " + html.EscapeString(description)
}

// groupDigits разбивает n на разряды: 1746000 -> 1,746,000.
func groupDigits(n int64) string {
	if n < 0 {
		return "-" + groupDigits(-n)
	}

	s := fmt.Sprint(n)

	var sb strings.Builder
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(c)
	}

	return sb.String()
}
