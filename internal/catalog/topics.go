package catalog

var topics = []Topic{
	{
		Title:       "Animals and Their Homes",
		Subject:     "Science",
		Band:        BandEarly,
		Description: "Where wild and farm animals live",
		Content: `# Animals and Their Homes

## Wild Animals
- **Lions** live in dens in the savanna
- **Birds** build nests in trees
- **Fish** live in water (rivers, lakes, oceans)
- **Monkeys** live in trees in forests
- **Elephants** roam in herds across grasslands

## Domestic Animals
- **Dogs** live in kennels or houses with families
- **Cows** live in barns on farms
- **Chickens** live in coops
- **Horses** live in stables

## Fun Facts
- Bees live in hives and make honey
- Ants live in underground colonies
- Bears hibernate in caves during winter

## Activity
Draw your favorite animal and its home!`,
	},
	{
		Title:       "My Family",
		Subject:     "Social Studies",
		Band:        BandEarly,
		Description: "Family members, roles and values",
		Content: `# My Family

## Family Members
- **Father/Dad** - The male parent who takes care of the family
- **Mother/Mom** - The female parent who loves and cares for children
- **Brother** and **Sister** - The children in the family
- **Grandparents** - Mom and Dad's parents

## Family Roles
- Parents work to provide food, shelter, and education
- Children help with simple chores and study hard
- Families eat meals together and share stories

## Types of Families
- **Nuclear family** - Parents and children
- **Extended family** - Includes grandparents, aunts, uncles
- **Single parent family** - One parent with children

## Family Values
- Love and care for each other
- Share toys and food
- Respect elders`,
	},
	{
		Title:       "The Human Body Systems",
		Subject:     "Science",
		Band:        BandMiddle,
		Description: "Breathing, digestion and blood flow",
		Content: `# The Human Body Systems

## Respiratory System
Helps us breathe and get oxygen.

- **Nose/Mouth** - Air enters here
- **Trachea (Windpipe)** - Carries air to the lungs
- **Lungs** - Take in oxygen
- **Diaphragm** - Muscle that helps us breathe

## Digestive System
Breaks down food so our body can use it for energy.

1. Chew food in the mouth
2. The esophagus carries food to the stomach
3. The stomach mixes food with acid
4. Nutrients are absorbed in the small intestine
5. The large intestine removes waste

## Circulatory System
Carries blood throughout the body.

- **Heart** - Pumps blood around the body
- **Blood vessels** - Tubes that carry blood
- **Blood** - Carries oxygen and nutrients

### Fun Facts
- The heart beats about 100,000 times per day
- Red blood cells carry oxygen
- White blood cells fight germs`,
	},
	{
		Title:       "Kenya's Geography",
		Subject:     "Social Studies",
		Band:        BandMiddle,
		Description: "Mountains, lakes, cities and peoples of Kenya",
		Content: `# Kenya's Geography & Culture

## Mountains
- **Mount Kenya** - Second highest mountain in Africa
- **Mount Elgon** - On the border with Uganda
- **Aberdare Ranges** - Central Kenya highlands

## Lakes and Rivers
- **Lake Victoria** - Largest lake in Africa
- **Lake Turkana** - Largest desert lake in the world
- **Lake Nakuru** - Famous for flamingos
- **River Tana** - Longest river in Kenya

## Climate Zones
- **Coastal** - Hot and humid
- **Highland** - Cool, good for farming
- **Arid/Semi-arid** - Hot and dry, pastoralism

## Major Cities
- **Nairobi** - Capital city, business center
- **Mombasa** - Coastal city, main port
- **Kisumu** - Lakeside city on Lake Victoria

## Wildlife
- **Big Five**: Lion, Elephant, Buffalo, Rhino, Leopard
- **Maasai Mara** - Great wildebeest migration
- **Tsavo** - Largest national park`,
	},
	{
		Title:       "Advanced Human Body Systems",
		Subject:     "Science",
		Band:        BandUpper,
		Description: "Nerves, excretion and hormones",
		Content: `# Advanced Human Body Systems

## Nervous System
Controls all body functions and helps us think.

- **Brain** - Control center, processes information
  - *Cerebrum* - Thinking, memory, movement
  - *Cerebellum* - Balance and coordination
  - *Brain stem* - Controls breathing and heart rate
- **Spinal Cord** - Carries messages between brain and body
- **Sensory nerves** bring information to the brain
- **Motor nerves** carry commands to muscles

## Excretory System
Removes waste products from the body.

- **Kidneys** - Filter blood, remove waste
- **Bladder** - Stores urine
- **Skin** - Removes waste through sweat
- **Lungs** - Remove carbon dioxide

## Endocrine System
Uses hormones to control body functions.

- **Pituitary** - Master gland, controls other glands
- **Thyroid** - Controls metabolism
- **Adrenals** - Stress response, energy
- **Pancreas** - Controls blood sugar

Hormones work slower than nerve signals but their effects last longer.`,
	},
	{
		Title:       "African History & Civilizations",
		Subject:     "Social Studies",
		Band:        BandUpper,
		Description: "Ancient kingdoms to Kenyan independence",
		Content: `# African History & Civilizations

## Ancient African Kingdoms
- **Kush (Sudan)** - Iron working and gold mining, built pyramids
- **Aksum (Ethiopia)** - Trading empire, minted its own coins
- **Great Zimbabwe** - Stone structures, gold and ivory trade
- **Mali Empire** - Mansa Musa and Timbuktu, a center of learning
- **Songhai Empire** - Controlled Niger River trade

## Pre-Colonial Kenya
- **Coastal city-states**: Kilwa, Malindi, Mombasa, Lamu
- **Agikuyu** - Agricultural society, Central Kenya
- **Maasai** - Pastoralists, Rift Valley
- **Kamba** - Long-distance traders

## Colonial Period (1895-1963)
- Uganda Railway built 1896-1901
- **Koitalel arap Samoei** led the Nandi resistance
- **Mekatilili wa Menza** led the Giriama
- **Mau Mau** freedom fighters (1952-1960)
- Independence achieved December 12, 1963

## African Heroes & Leaders
- **Jomo Kenyatta** - Kenya's first President
- **Nelson Mandela** - Anti-apartheid leader
- **Wangari Maathai** - Environmental activist, Nobel Prize winner`,
	},
}
