package recipe

import "github.com/idilsaglam/recipebox/internal/model"

// Samples returns the built-in recipes written on first run. Each call
// returns fresh slices.
func Samples() []model.Recipe {
	return []model.Recipe{
		{
			ID:          "classic-dal-rice",
			Title:       "Classic Dal & Rice",
			Description: "A comforting and nutritious Indian lentil dish served with fluffy basmati rice.",
			Rating:      4,
			Ingredients: []string{
				"1 cup yellow lentils (toor dal)",
				"1/2 cup basmati rice",
				"1 onion, finely chopped",
				"2 tomatoes, chopped",
				"3 cloves garlic, minced",
				"1 inch ginger, grated",
				"1 green chili, slit",
				"1 tsp turmeric powder",
				"1 tsp cumin seeds",
				"1 tsp mustard seeds",
				"2 tbsp ghee or oil",
				"Salt to taste",
				"Fresh coriander for garnish",
			},
			Steps: []string{
				"Wash lentils and rice separately. Soak rice for 20 minutes.",
				"Pressure cook lentils with turmeric and 3 cups water for 3 whistles.",
				"Cook rice with 2 cups water until fluffy.",
				"Heat ghee in a pan, add cumin and mustard seeds.",
				"Add onions and sauté until golden brown.",
				"Add ginger, garlic, green chili and cook for 1 minute.",
				"Add tomatoes and cook until soft.",
				"Mash the cooked lentils and add to the pan.",
				"Simmer for 10 minutes, adjust consistency with water.",
				"Serve hot with rice, garnished with coriander.",
			},
			PrepTime:   15,
			CookTime:   30,
			Difficulty: model.Easy,
			ImageURL:   "https://www.indianhealthyrecipes.com/wp-content/uploads/2022/03/instant-pot-dal-rice-recipe.jpg",
		},
		{
			ID:          "violet-velvet-cake",
			Title:       "Violet Velvet Cake",
			Description: "A stunning purple velvet cake with cream cheese frosting.",
			Rating:      4.5,
			Ingredients: []string{
				"2 ½ cups all-purpose flour",
				"1 ½ cups granulated sugar",
				"1 tsp baking soda",
				"1 tsp salt",
				"1 tbsp cocoa powder",
				"1 ½ cups vegetable oil",
				"1 cup buttermilk",
				"2 large eggs",
				"2 tbsp violet food coloring",
				"1 tsp white vinegar",
				"1 tsp vanilla extract",
			},
			Steps: []string{
				"Preheat oven to 350°F (175°C). Grease and flour three 8-inch round cake pans.",
				"In a large bowl, whisk together flour, sugar, baking soda, salt, and cocoa powder.",
				"In another bowl, mix oil, buttermilk, eggs, food coloring, vinegar, and vanilla.",
				"Combine wet and dry ingredients, mixing until just combined.",
				"Divide batter evenly among prepared pans.",
				"Bake for 25-30 minutes or until a toothpick comes out clean.",
				"Cool in pans for 10 minutes, then remove to wire racks to cool completely.",
				"Frost with cream cheese frosting and decorate with edible violets.",
			},
			PrepTime:   30,
			CookTime:   30,
			Difficulty: model.Medium,
			ImageURL:   "https://images.unsplash.com/photo-1578985545062-69928b1d9587?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&q=80",
		},
		{
			ID:          "paneer-butter-masala",
			Title:       "Paneer Butter Masala",
			Description: "Creamy tomato-based curry with pan-fried paneer cubes, rich, mildly spiced, and perfect with naan or rice.",
			Rating:      4.5,
			Ingredients: []string{
				"300g paneer, cubed",
				"2 tbsp butter",
				"1 large onion, finely chopped",
				"3 tomatoes, pureed",
				"1 tbsp ginger-garlic paste",
				"1/2 cup heavy cream",
				"1 tsp garam masala",
				"1 tsp red chili powder",
				"1 tsp kasuri methi (dried fenugreek)",
				"Salt to taste",
				"Fresh coriander for garnish",
			},
			Steps: []string{
				"Heat butter in a pan and lightly fry paneer cubes until golden; set aside.",
				"Sauté onions until translucent, add ginger-garlic paste and cook for 1 minute.",
				"Add tomato puree, spices, and simmer 8-10 minutes until oil separates.",
				"Stir in cream and kasuri methi, then add paneer and simmer 5 minutes.",
				"Garnish with coriander and serve with naan or rice.",
			},
			PrepTime:   20,
			CookTime:   25,
			Difficulty: model.Medium,
			ImageURL:   "https://myfoodstory.com/wp-content/uploads/2021/07/Paneer-Butter-Masala-3.jpg",
		},
		{
			ID:          "chocolate-banana-bread",
			Title:       "Chocolate Banana Bread",
			Description: "Moist banana bread studded with chocolate chips, great for breakfast or snack time.",
			Rating:      5,
			Ingredients: []string{
				"3 ripe bananas, mashed",
				"2 cups all-purpose flour",
				"1/2 cup brown sugar",
				"1/3 cup melted butter",
				"2 eggs",
				"1 tsp baking soda",
				"1/2 tsp salt",
				"1 cup chocolate chips",
				"1 tsp vanilla extract",
			},
			Steps: []string{
				"Preheat oven to 350°F (175°C) and grease a loaf pan.",
				"Mix mashed bananas, melted butter, sugar, eggs, and vanilla until combined.",
				"Stir in flour, baking soda, and salt until just combined; fold in chocolate chips.",
				"Pour batter into pan and bake 50-60 minutes or until a toothpick comes out clean.",
				"Cool before slicing and serve.",
			},
			PrepTime:   15,
			CookTime:   55,
			Difficulty: model.Easy,
			ImageURL:   "https://bakingamoment.com/wp-content/uploads/2021/02/IMG_0023-chocolate-banana-bread.jpg",
		},
	}
}
