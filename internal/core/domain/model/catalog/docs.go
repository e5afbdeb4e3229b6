// Package catalog holds the garment catalog: categories with their base prices, the designs
// offered per category, the add-on embellishments and the measurement fields a customer fills
// in for custom measurements. Prices are resolved from here so that clients never send prices.
package catalog
