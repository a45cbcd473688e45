package advisory

var suggestionPool = []string{
	"清风徐来，水波不兴。此号平和从容，适合日常联络，细水长流。",
	"山高水长，来日方长。此号沉稳大方，宜作工作主号，稳中求进。",
	"春华秋实，厚积薄发。此号朴实无华，耐得住岁月打磨。",
	"云卷云舒，宠辱不惊。此号气定神闲，适合喜欢安静生活的您。",
	"月白风清，心境自明。此号简洁干净，便于亲友记忆。",
	"星河长明，灯火可亲。此号温和亲切，适合作为家庭联络号。",
	"一叶知秋，见微知著。此号自有章法，细品别有韵味。",
	"海纳百川，有容乃大。此号包容开阔，适合广结良缘。",
	"竹报平安，花开富贵。此号寓意吉祥，宜长久使用。",
	"行远自迩，登高自卑。此号脚踏实地，陪您一步一个脚印。",
	"松风水月，未足比其清华。此号清雅脱俗，彰显个人品味。",
	"千里之行，始于足下。此号寓意开端良好，适合新起点使用。",
}

var blessingPool = []string{
	"愿您所行皆坦途，所遇皆良人，岁岁常欢愉。",
	"愿日子清澈明朗，心中有光，眼里有景。",
	"愿您平安喜乐，万事胜意，前程似锦。",
	"愿所有美好如期而至，所有温柔不期而遇。",
	"愿您三餐四季，温柔有趣，诸事顺遂。",
	"愿您心有所向，日复一日，必有精进。",
	"愿春风十里，皆不如您笑意盈盈。",
	"愿您身体康健，家宅安宁，福寿绵长。",
	"愿您事业有成，步步生花，好运常伴。",
	"愿山河无恙，人间皆安，您我皆好。",
}
